package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

// Init builds the router. Every API route lives under the version prefix
// (/api/v{N}); unknown paths and unsupported methods get the 404 envelope.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// NotFound and MethodNotAllowed are inherited by sub-routers at mount
	// time, so they are registered first.
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	router.Use(h.withRealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(h.withRecovery)
	router.Use(withSecureHeaders)
	router.Use(middleware.Compress(compressionLevel))
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout(h.requestTimeout))
	}
	if h.limiters != nil {
		router.Use(h.withRateLimit(h.limiters.General))
	}

	router.Get("/", h.redirectToAPI)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route(h.app.APIPrefix(), func(r chi.Router) {
		r.Get("/", h.handle(h.welcome))
		r.Get("/version", h.handle(h.getServerVersion))
		r.Get("/examples", h.handle(h.getExamples))

		r.Route("/auth", func(r chi.Router) {
			if h.limiters != nil {
				r.Use(h.withRateLimit(h.limiters.Critical))
				r.Use(h.withSlowDown(h.limiters.Speed))
			}
			r.Post("/register", h.handle(h.register))
			r.Post("/login", h.handle(h.login))
		})

		// routes with authorization
		r.Get("/users/me", h.authenticated(h.getProfile))
	})

	return router
}
