package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload is the minimal set of user-identifying fields embedded into a
// signed session token. It never carries the password hash.
type TokenPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenClaims is the JWT claim set issued at login.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, iat,
// exp, jti) and [TokenPayload] for the application fields.
type TokenClaims struct {
	TokenPayload
	jwt.RegisteredClaims
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string

	// ExpiresIn is the lifetime of the token.
	ExpiresIn time.Duration
}

// ExpiresInSeconds returns the token lifetime in whole seconds.
func (t AccessToken) ExpiresInSeconds() int64 {
	return int64(t.ExpiresIn / time.Second)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t AccessToken) String() string {
	return t.SignedString
}
