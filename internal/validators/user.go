// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

const tagAlphanumeric = "alphanumeric_ascii"

var alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// userRules is the tagged projection of [models.User] checked by the
// validator engine. Rule order in each tag is the order violations are
// reported in.
type userRules struct {
	Username string `validate:"required,min=2,max=100,alphanumeric_ascii"`
	Password string `validate:"required,min=8,max=200"`
}

var fieldStructName = map[string]string{
	FieldUsername: "Username",
	FieldPassword: "Password",
}

var ruleMessages = map[string]map[string]string{
	"Username": {
		"required":      "Username is required.",
		"min":           "Username must be at least 2 characters long.",
		"max":           "Username cannot exceed 100 characters.",
		tagAlphanumeric: "Username can only contain alphanumeric characters.",
	},
	"Password": {
		"required": "Password is required.",
		"min":      "Password must be at least 8 characters long.",
		"max":      "Password cannot exceed 200 characters.",
	},
}

// UserValidator checks the username and plaintext password rules of
// [models.User] and [models.Credentials].
type UserValidator struct {
	engine *validator.Validate
}

// NewUserValidator constructs a [UserValidator] and returns it as
// [Validator].
func NewUserValidator() Validator {
	engine := validator.New(validator.WithRequiredStructEnabled())
	// the pattern cannot fail to register: the tag is fixed and non-empty
	_ = engine.RegisterValidation(tagAlphanumeric, func(fl validator.FieldLevel) bool {
		return alphanumericPattern.MatchString(fl.Field().String())
	})
	return &UserValidator{engine: engine}
}

// Validate implements [Validator]. Without field names both username and
// password are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var rules userRules
	switch value := obj.(type) {
	case models.User:
		rules = userRules{Username: value.Username, Password: value.Password}
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		rules = userRules{Username: value.Username, Password: value.Password}
	case models.Credentials:
		rules = userRules{Username: value.Username, Password: value.Password}
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		rules = userRules{Username: value.Username, Password: value.Password}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	partial := make([]string, 0, len(fields))
	for _, field := range fields {
		name, ok := fieldStructName[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		partial = append(partial, name)
	}

	err := v.engine.StructPartialCtx(ctx, rules, partial...)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate user: %w", err)
	}

	first := fieldErrs[0]
	return &ValidationError{
		Field:   first.Field(),
		Rule:    first.Tag(),
		Message: ruleMessages[first.StructField()][first.Tag()],
	}
}
