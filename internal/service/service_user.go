package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Profile trusts the id claim alone: the username embedded in the token is
// not compared with the stored record. A token that outlives its user yields
// a NotFound error.
func (s *userService) Profile(ctx context.Context, payload models.TokenPayload) (models.Profile, error) {
	user, err := s.userRepository.FindUserByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Warn().Str("user_id", payload.ID).Msg("profile: user not found")
			return models.Profile{}, apperr.Wrap(apperr.NotFound, msgUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("user_id", payload.ID).Msg("profile: user lookup failed")
		return models.Profile{}, apperr.Wrap(apperr.ServerFailed, msgProfileFailed, err)
	}

	return user.Profile(), nil
}

func (s *userService) DeleteUserByUsername(ctx context.Context, username string) error {
	if err := s.userRepository.DeleteUserByUsername(ctx, username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return apperr.Wrap(apperr.NotFound, msgUserNotFound, err)
		}
		return apperr.Wrap(apperr.ServerFailed, "", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user deleted")
	return nil
}
