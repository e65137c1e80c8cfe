// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors of request decoding. Callers can match against them with
// [errors.Is].
var (
	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)

// Client-facing messages written by this package.
const (
	msgWelcome            = "Welcome To The API"
	msgUserCreated        = "User Created."
	msgLoginSuccess       = "Login successfully."
	msgUserData           = "User Data"
	msgExamplesRetrieved  = "Examples retrieved successfully"
	msgAuthHeaderMissing  = "Authorization header is missing."
	msgInvalidToken       = "Invalid or expired token."
	msgRateLimited        = "You have exceeded the number of allowed requests. Please try again later."
	msgInvalidRequestBody = "Invalid request body."
	msgRequestTimeout     = "Request timed out."
)

func notFoundMessage(uri string) string {
	return fmt.Sprintf("The requested resource at \"%s\" could not be found. Please check the URL and try again.", uri)
}
