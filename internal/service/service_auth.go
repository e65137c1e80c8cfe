package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// constant-time password comparison.
type authService struct {
	// userRepository is the credential store. It hashes passwords on insert.
	userRepository store.UserRepository

	// hasher compares a supplied password with a stored hash.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID, without the
// plaintext password) or a BadRequest error when:
//   - the username or password is missing;
//   - the username is taken, whether found by the lookup or lost in a race
//     on the store's uniqueness constraint;
//   - a field violates its length or charset rule.
//
// Any other failure is a ServerFailed error.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Empty() {
		log.Warn().Str("username", credentials.Username).Msg("register: missing fields")
		return models.User{}, apperr.Wrap(apperr.BadRequest, msgRegisterFieldsRequired, ErrFieldsRequired)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Warn().Str("username", credentials.Username).Msg("register: username already exists")
		return models.User{}, apperr.Wrap(apperr.BadRequest, msgUsernameExists, store.ErrUsernameAlreadyExists)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", credentials.Username).Msg("register: user lookup failed")
		return models.User{}, apperr.Wrap(apperr.ServerFailed, msgRegisterFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		var validationErr *validators.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Warn().Str("field", validationErr.Field).Str("rule", validationErr.Rule).Msg("register: validation failed")
			return models.User{}, apperr.Wrap(apperr.BadRequest, validationErr.Message, err)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Warn().Str("username", credentials.Username).Msg("register: username taken concurrently")
			return models.User{}, apperr.Wrap(apperr.BadRequest, msgUsernameExists, err)
		default:
			log.Err(err).Str("username", credentials.Username).Msg("register: user creation failed")
			return models.User{}, apperr.Wrap(apperr.ServerFailed, msgRegisterFailed, err)
		}
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user and issues an access token whose
// payload carries the user's id and username.
//
// Returns a BadRequest error when a field is missing, the user does not exist
// or the password does not match the stored hash. No token is issued in any
// of these cases.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	if credentials.Empty() {
		log.Warn().Str("username", credentials.Username).Msg("login: missing fields")
		return models.AccessToken{}, apperr.Wrap(apperr.BadRequest, msgLoginFieldsRequired, ErrFieldsRequired)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", credentials.Username).Msg("login: user not registered")
			return models.AccessToken{}, apperr.Wrap(apperr.BadRequest, msgUserNotRegistered, ErrUserNotRegistered)
		}
		log.Err(err).Str("username", credentials.Username).Msg("login: user lookup failed")
		return models.AccessToken{}, apperr.Wrap(apperr.ServerFailed, msgLoginFailed, err)
	}

	if err = a.hasher.Compare(user.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Warn().Str("user_id", user.UserID).Msg("login: wrong password")
			return models.AccessToken{}, apperr.Wrap(apperr.BadRequest, msgPasswordInvalid, ErrWrongPassword)
		}
		log.Err(err).Str("user_id", user.UserID).Msg("login: password comparison failed")
		return models.AccessToken{}, apperr.Wrap(apperr.ServerFailed, msgLoginFailed, err)
	}

	payload := models.TokenPayload{ID: user.UserID, Username: user.Username}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, payload, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("login: token creation failed")
		return models.AccessToken{}, apperr.Wrap(apperr.ServerFailed, msgLoginFailed, errors.Join(ErrTokenCreationFailed, err))
	}

	log.Info().Str("user_id", user.UserID).Msg("user logged in")
	return token, nil
}

// Authenticate validates a raw JWT string, verifying the signature, the
// issuer and the expiry. Any validation failure (expired, wrong issuer,
// malformed) is collapsed into a single Forbidden error wrapping
// ErrTokenIsExpiredOrInvalid, so that callers never learn which check failed.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.TokenPayload, error) {
	payload, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.TokenPayload{}, apperr.Wrap(apperr.Forbidden, msgInvalidToken, ErrTokenIsExpiredOrInvalid)
	}

	return payload, nil
}
