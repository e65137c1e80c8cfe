package limiter

import (
	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Set groups the limiters of the HTTP API.
type Set struct {
	// General applies to every route.
	General *FixedWindow

	// Critical applies to the authentication routes.
	Critical *FixedWindow

	// Speed delays repeated hits of the authentication routes.
	Speed *SlowDown
}

// NewSet builds the limiters described by cfg. reg may be nil.
func NewSet(cfg config.RateLimit, reg prometheus.Registerer, opts ...Option) *Set {
	opts = append([]Option{WithSkip(cfg.SkipIPs...)}, opts...)
	if reg != nil {
		opts = append(opts, WithRegistry(reg))
	}

	return &Set{
		General:  NewFixedWindow("general", cfg.Limit, cfg.Window, opts...),
		Critical: NewFixedWindow("critical", cfg.CriticalLimit, cfg.Window, opts...),
		Speed:    NewSlowDown("speed", cfg.DelayAfter, cfg.DelayStep, cfg.Window, opts...),
	}
}
