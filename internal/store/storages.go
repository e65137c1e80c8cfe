package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
)

// Storages groups the repositories handed to the service layer together with
// the resources backing them.
type Storages struct {
	UserRepository    UserRepository
	ExampleRepository ExampleRepository

	db *DB
}

// Dependencies are the collaborators every storage backend needs.
type Dependencies struct {
	Hasher    crypto.PasswordHasher
	Validator validators.Validator
	IDs       IDGenerator
}

// NewStorages initialises the backend selected by cfg.Driver:
//   - postgres and sqlite open a connection and apply pending migrations;
//   - memory keeps everything in process memory.
func NewStorages(ctx context.Context, cfg config.DB, deps Dependencies, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStorages(deps, log), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStorages(db, deps, log), nil
}

// NewSQLStorages wires the repositories to an already migrated database.
func NewSQLStorages(db *DB, deps Dependencies, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    newUserRepository(newSQLUserStorage(db), deps.Hasher, deps.Validator, deps.IDs, log),
		ExampleRepository: NewExampleRepository(db, deps.IDs),
		db:                db,
	}
}

// NewMemoryStorages returns empty in-memory repositories.
func NewMemoryStorages(deps Dependencies, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    newUserRepository(newMemoryUserStorage(), deps.Hasher, deps.Validator, deps.IDs, log),
		ExampleRepository: NewMemoryExampleRepository(deps.IDs),
	}
}

// Ping checks that the backing database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
