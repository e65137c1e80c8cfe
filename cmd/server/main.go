package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/crypto"
	"github.com/MKhiriev/go-rest-boilerplate/internal/handler"
	"github.com/MKhiriev/go-rest-boilerplate/internal/handler/http"
	"github.com/MKhiriev/go-rest-boilerplate/internal/limiter"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-rest-boilerplate/internal/server"
	"github.com/MKhiriev/go-rest-boilerplate/internal/service"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
	"github.com/MKhiriev/go-rest-boilerplate/internal/workers"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("rest-api").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := newLogger(cfg.App)
	if err != nil {
		logger.NewLogger("rest-api").Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().
		Str("env", cfg.App.Env).
		Str("prefix", cfg.App.APIPrefix()).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx := context.Background()

	hasher, err := crypto.NewBcryptHasher(cfg.Auth.SaltRounds)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, store.Dependencies{
		Hasher:    hasher,
		Validator: validators.NewUserValidator(),
		IDs:       utils.NewUUIDGenerator(),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, hasher, buildInfo, *cfg, log)

	m := metrics.New()
	limiters := limiter.NewSet(cfg.RateLimit, m.Registry())

	handlers, err := handler.NewHandlers(services, storages, *cfg, log,
		http.WithLimiters(limiters),
		http.WithMetrics(m),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := []workers.Worker{
		workers.NewLimiterSweeper(cfg.Workers.LimiterSweepInterval, log, limiters.General, limiters.Critical, limiters.Speed),
	}
	if handlers.GRPC != nil {
		backgroundWorkers = append(backgroundWorkers, workers.NewHealthProber(cfg.Workers.HealthProbeInterval, handlers.GRPC, log))
	}
	ws := workers.NewWorkers(backgroundWorkers...)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ws.Run(ctx)
	defer ws.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// newLogger returns a console logger in development and a JSON logger
// otherwise, filtered by the configured level.
func newLogger(app config.App) (*logger.Logger, error) {
	log := logger.NewLogger("rest-api")
	if app.IsDevelopment() {
		log = logger.NewConsoleLogger("rest-api")
	}
	return log.WithLevel(app.LogLevel)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
