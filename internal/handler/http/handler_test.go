package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/limiter"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-rest-boilerplate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	app := testAppConfig(config.EnvTest)

	h := NewHandler(svc, app, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, app, h.app)
	assert.Nil(t, h.limiters)
	assert.Nil(t, h.metrics)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_Options(t *testing.T) {
	limiters := limiter.NewSet(config.RateLimit{Window: time.Minute, Limit: 1, CriticalLimit: 1, DelayAfter: 1}, nil)
	m := metrics.New()

	h := NewHandler(&service.Services{}, testAppConfig(config.EnvTest), logger.Nop(),
		WithLimiters(limiters),
		WithMetrics(m),
		WithRequestTimeout(5*time.Second),
	)

	assert.Same(t, limiters, h.limiters)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testAppConfig(config.EnvTest), logger.Nop())
	h2 := NewHandler(&service.Services{}, testAppConfig(config.EnvTest), logger.Nop())

	assert.NotSame(t, h1, h2)
}
