package service

import (
	"context"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves buildInfo. When no version was injected at link
// time, the configured APP_VERSION is reported instead.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) AppInfoService {
	if cfg.Version != "" && !buildInfo.HasVersion() {
		buildInfo = models.NewAppBuildInfo(cfg.Version, buildInfo.Date(), buildInfo.Commit())
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.buildInfo.Response()
}
