package service

import (
	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ExampleService ExampleService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ExampleService: NewExampleService(storages.ExampleRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
