package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// sqlUserStorage is the SQL implementation of userStorage shared by the
// PostgreSQL and SQLite backends. Dialect differences are carried by [DB].
type sqlUserStorage struct {
	db *DB
}

func newSQLUserStorage(db *DB) *sqlUserStorage {
	return &sqlUserStorage{db: db}
}

func (s *sqlUserStorage) insertUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(s.db.builder, user)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		if s.db.errorClassificator.IsUniqueViolation(err) {
			return ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*sqlUserStorage.insertUser").Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlUserStorage) selectUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(s.db.builder, username)
	if err != nil {
		return models.User{}, err
	}

	return s.selectUser(ctx, query, args)
}

func (s *sqlUserStorage) selectUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(s.db.builder, userID)
	if err != nil {
		return models.User{}, err
	}

	return s.selectUser(ctx, query, args)
}

func (s *sqlUserStorage) selectUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Username, &user.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqlUserStorage.selectUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (s *sqlUserStorage) deleteUserByUsername(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserByUsernameQuery(s.db.builder, username)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserStorage.deleteUserByUsername").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
