package handler

import (
	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/handler/grpc"
	"github.com/MKhiriev/go-rest-boilerplate/internal/handler/http"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The gRPC health
// handler reports the reachability of pinger.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.StructuredConfig, logger *logger.Logger, httpOpts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := append([]http.Option{
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
			http.WithTrustedProxies(cfg.Server.TrustedProxies),
		}, httpOpts...)
		handlers.HTTP = http.NewHandler(services, cfg.App, logger, opts...)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
