package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenParams       = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationHead = errors.New("invalid authorization header")
	ErrEmptyTokenSubject        = errors.New("empty token subject")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for payload.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - ID        (jti): a random token identifier
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// The payload fields (id, username) are embedded as private claims. All
// parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", payload, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, payload models.TokenPayload, tokenDuration time.Duration, signKey string, now time.Time) (models.AccessToken, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || payload.ID == "" {
		return models.AccessToken{}, ErrInvalidTokenParams
	}

	claims := &models.TokenClaims{
		TokenPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   payload.ID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.AccessToken{SignedString: tokenString, ExpiresIn: tokenDuration}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its payload.
//
// Validation includes:
//   - Signature verification with HS256 only, using signKey
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim presence
//
// Example usage:
//
//	payload, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service", time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.TokenPayload, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || claims.TokenPayload.ID == "" {
		return models.TokenPayload{}, ErrEmptyTokenSubject
	}

	return claims.TokenPayload, nil
}

// ParseBearerToken returns the second space-separated segment of an
// Authorization header value ("Bearer <token>").
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHead
	}
	return parts[1], nil
}
