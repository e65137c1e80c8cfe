package http

import (
	"net/netip"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/limiter"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-rest-boilerplate/internal/service"
)

type Handler struct {
	services *service.Services

	// limiters is nil when rate limiting is disabled.
	limiters *limiter.Set

	// metrics is nil when instrumentation is disabled.
	metrics *metrics.Metrics

	// trustedProxies may set the client address through forwarding headers.
	trustedProxies []netip.Prefix

	app            config.App
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithLimiters enables rate limiting.
func WithLimiters(limiters *limiter.Set) Option {
	return func(h *Handler) { h.limiters = limiters }
}

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithRequestTimeout bounds the duration of every request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) { h.requestTimeout = timeout }
}

// WithTrustedProxies lists the proxy addresses or CIDR ranges whose
// X-Forwarded-For / X-Real-IP headers are honoured.
func WithTrustedProxies(proxies []string) Option {
	return func(h *Handler) { h.trustedProxies = parseTrustedProxies(proxies) }
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Str("prefix", app.APIPrefix()).Msg("http handler created")
	return h
}
