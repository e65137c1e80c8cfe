package store

import (
	"context"

	"github.com/MKhiriev/go-rest-boilerplate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. It owns password hashing: a user
// handed to CreateUser with a plaintext password is validated, hashed and
// only then persisted.
type UserRepository interface {
	// CreateUser persists a new user and returns it with its assigned ID and
	// password hash. The plaintext password is cleared from the result.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the exact username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// DeleteUserByUsername removes the user or returns ErrUserNotFound.
	DeleteUserByUsername(ctx context.Context, username string) error
}

// ExampleRepository stores the sample resources served by the examples
// endpoint.
type ExampleRepository interface {
	// GetAllExamples returns every stored example. The result is never nil.
	GetAllExamples(ctx context.Context) ([]models.Example, error)

	// CreateExample persists a new example and returns it with its assigned ID.
	CreateExample(ctx context.Context, example models.Example) (models.Example, error)
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
