// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// userStorage persists user records as given, without applying business
// rules. It is implemented by every storage backend.
type userStorage interface {
	insertUser(ctx context.Context, user models.User) error
	selectUserByUsername(ctx context.Context, username string) (models.User, error)
	selectUserByID(ctx context.Context, userID string) (models.User, error)
	deleteUserByUsername(ctx context.Context, username string) error
}

// userRepository implements [UserRepository] on top of any userStorage
// backend. It applies the field rules and turns plaintext passwords into
// hashes before a record becomes durable.
type userRepository struct {
	storage   userStorage
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       IDGenerator
	logger    *logger.Logger
}

// newUserRepository constructs a [UserRepository] over storage.
func newUserRepository(storage userStorage, hasher crypto.PasswordHasher, validator validators.Validator, ids IDGenerator, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		storage:   storage,
		hasher:    hasher,
		validator: validator,
		ids:       ids,
		logger:    log,
	}
}

// CreateUser validates user, hashes its plaintext password and persists it.
//
// A user carrying only a PasswordHash (no plaintext) is stored with that hash
// unchanged: the hash is never hashed again. Field rule violations are
// returned as [*validators.ValidationError]; a taken username as
// [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	fields := []string{validators.FieldUsername, validators.FieldPassword}
	if user.Password == "" && user.PasswordHash != "" {
		fields = fields[:1]
	}

	if err := r.validator.Validate(ctx, user, fields...); err != nil {
		return models.User{}, err
	}

	if user.Password != "" {
		hash, err := r.hasher.Hash(user.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		user.Password = ""
	}

	if user.UserID == "" {
		user.UserID = r.ids.Generate()
	}

	if err := r.storage.insertUser(ctx, user); err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Debug().Str("user_id", user.UserID).Msg("user created")
	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.storage.selectUserByUsername(ctx, username)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.storage.selectUserByID(ctx, userID)
}

func (r *userRepository) DeleteUserByUsername(ctx context.Context, username string) error {
	return r.storage.deleteUserByUsername(ctx, username)
}
