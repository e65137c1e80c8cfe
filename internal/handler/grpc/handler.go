// Package grpc implements the gRPC transport of the application: the
// standard grpc.health.v1 service reporting whether the API can serve.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the REST API.
const ServiceName = "rest.api"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the reachability of the
// storage. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The reported status is NOT_SERVING
// until the first [Handler.Probe].
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register registers the health service on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Probe pings the storage and updates the health status accordingly.
func (h *Handler) Probe(ctx context.Context) {
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	// "" is the overall server status
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
