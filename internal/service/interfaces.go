package service

import (
	"context"

	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// AuthService orchestrates registration, login and token verification.
// Every error it returns is an [*apperr.Error] ready for the HTTP boundary.
type AuthService interface {
	// Register creates a new account. It never issues a token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)

	// Authenticate verifies a raw token and returns its payload. Every
	// verification failure yields the same Forbidden error.
	Authenticate(ctx context.Context, tokenString string) (models.TokenPayload, error)
}

// UserService serves account data of authenticated users.
type UserService interface {
	// Profile looks up the user named by the id claim of payload.
	Profile(ctx context.Context, payload models.TokenPayload) (models.Profile, error)

	// DeleteUserByUsername removes an account. Used by administrative paths
	// and test teardown.
	DeleteUserByUsername(ctx context.Context, username string) error
}

// ExampleService serves the sample resources.
type ExampleService interface {
	GetAllExamples(ctx context.Context) ([]models.Example, error)
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
