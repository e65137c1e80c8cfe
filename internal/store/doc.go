// Package store is the persistence layer of the API server.
//
// It exposes the credential store ([UserRepository]) and the examples store
// ([ExampleRepository]) over three interchangeable backends selected by
// configuration: PostgreSQL (pgx driver), SQLite (mattn/go-sqlite3) and
// process memory. SQL backends build their statements with squirrel and apply
// goose migrations on startup.
package store
