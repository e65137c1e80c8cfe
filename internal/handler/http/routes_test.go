package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RootRedirectsToAPI(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testPrefix, rec.Header().Get("Location"))
}

func TestInit_Welcome(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{testPrefix, testPrefix + "/"} {
		t.Run(path, func(t *testing.T) {
			rec := doJSON(router, http.MethodGet, path, nil, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, models.MessageResponse{Message: "Welcome To The API", Status: models.StatusSuccess},
				decodeJSON[models.MessageResponse](t, rec))
		})
	}
}

func TestInit_APIVersionPrefix(t *testing.T) {
	storages, hasher := newTestStorages(t)
	app := config.App{Env: config.EnvTest, APIVersion: "2"}
	router := NewHandler(newTestServices(storages, hasher, config.EnvTest), app, logger.Nop()).Init()

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/api/v2", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/api/v1", nil, nil).Code)
	assert.Equal(t, "/api/v2", doJSON(router, http.MethodGet, "/", nil, nil).Header().Get("Location"))
}

func TestInit_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown top-level path", method: http.MethodGet, path: "/nope"},
		{name: "unknown API path", method: http.MethodGet, path: testPrefix + "/nope"},
		{name: "query string is kept", method: http.MethodGet, path: testPrefix + "/nope?x=1"},
		{name: "unknown auth path", method: http.MethodPost, path: testPrefix + "/auth/nope"},
		{name: "wrong method on auth route", method: http.MethodGet, path: testPrefix + "/auth/login"},
		{name: "wrong method on profile route", method: http.MethodDelete, path: testPrefix + "/users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(router, tt.method, tt.path, nil, nil)

			require.Equal(t, http.StatusNotFound, rec.Code)
			body := decodeJSON[models.ErrorResponse](t, rec)
			assert.Equal(t, `The requested resource at "`+tt.path+`" could not be found. Please check the URL and try again.`, body.Message)
			assert.Equal(t, models.StatusFail, body.Status)
			assert.Empty(t, body.Stack)
		})
	}
}

func TestInit_CommonHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, testPrefix, nil, http.Header{traceIDHeader: []string{"trace-123"}})

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		router, _ := newTestRouter(t)

		assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/metrics", nil, nil).Code)
	})

	t.Run("enabled", func(t *testing.T) {
		router, _ := newTestRouter(t, WithMetrics(metrics.New()))

		doJSON(router, http.MethodGet, testPrefix, nil, nil)
		rec := doJSON(router, http.MethodGet, "/metrics", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "rest_boilerplate_http_requests_total")
	})
}

func TestInit_Version(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, testPrefix+"/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"},
		decodeJSON[models.VersionResponse](t, rec))
}
