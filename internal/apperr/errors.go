// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the closed error taxonomy of the API.
//
// Every failure that should reach a client is an [*Error] carrying a [Kind]
// (which fixes the HTTP status code) and a client-facing message. The
// transport layer converts any error into the wire envelope via [From].
package apperr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/samber/oops"
)

// Kind enumerates the failure classes the API can report.
type Kind int

const (
	// ServerFailed is the zero value so that an unclassified error is never
	// reported as a client fault.
	ServerFailed Kind = iota
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	RateLimited
	Timeout
)

var kindStatus = map[Kind]int{
	BadRequest:   http.StatusBadRequest,
	Unauthorized: http.StatusUnauthorized,
	Forbidden:    http.StatusForbidden,
	NotFound:     http.StatusNotFound,
	RateLimited:  http.StatusTooManyRequests,
	Timeout:      http.StatusGatewayTimeout,
	ServerFailed: http.StatusInternalServerError,
}

var kindDefaultMessage = map[Kind]string{
	BadRequest:   "BadRequest",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	NotFound:     "Not Found",
	RateLimited:  "Rate limit exceeded",
	Timeout:      "Request timed out.",
	ServerFailed: "Server Failed",
}

// HTTPStatus returns the HTTP status code of the kind.
func (k Kind) HTTPStatus() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "BAD_REQUEST"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	case RateLimited:
		return "RATE_LIMITED"
	case Timeout:
		return "TIMEOUT"
	default:
		return "SERVER_FAILED"
	}
}

// StatusFromCode derives the envelope status label from an HTTP status code:
// codes starting with "4" are client faults ("fail"), everything else is
// "error".
func StatusFromCode(code int) models.Status {
	if s := strconv.Itoa(code); s != "" && s[0] == '4' {
		return models.StatusFail
	}
	return models.StatusError
}

// Error is a classified failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string

	cause error
}

// New builds an [*Error] of the given kind. An empty message is replaced by
// the default message of the kind. A stack trace is captured at the call site.
func New(kind Kind, message string) *Error {
	if message == "" {
		message = kindDefaultMessage[kind]
	}
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   oops.Code(kind.String()).Errorf("%s", message),
	}
}

// Wrap builds an [*Error] of the given kind around an underlying cause.
// The cause stays reachable through [errors.Is] and [errors.As] but its text
// is never sent to the client.
func Wrap(kind Kind, message string, cause error) *Error {
	if cause == nil {
		return New(kind, message)
	}
	if message == "" {
		message = kindDefaultMessage[kind]
	}
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   oops.Code(kind.String()).Wrap(cause),
	}
}

func NewBadRequest(message string) *Error   { return New(BadRequest, message) }
func NewUnauthorized(message string) *Error { return New(Unauthorized, message) }
func NewForbidden(message string) *Error    { return New(Forbidden, message) }
func NewNotFound(message string) *Error     { return New(NotFound, message) }
func NewRateLimited(message string) *Error  { return New(RateLimited, message) }
func NewTimeout(message string) *Error      { return New(Timeout, message) }
func NewServerFailed(message string) *Error { return New(ServerFailed, message) }

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPStatus returns the HTTP status code of the error.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// Status returns the envelope status label ("fail" or "error").
func (e *Error) Status() models.Status {
	return StatusFromCode(e.HTTPStatus())
}

// Stack returns the stack trace captured when the error was built.
func (e *Error) Stack() string {
	if oopsErr, ok := oops.AsOops(e.cause); ok {
		return oopsErr.Stacktrace()
	}
	return ""
}

// From classifies an arbitrary error. An [*Error] anywhere in the chain is
// returned as is; anything else becomes a [ServerFailed] error with a generic
// message wrapping err.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ServerFailed, "", err)
}
