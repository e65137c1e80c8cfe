package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
)

// HealthProber refreshes the reported health status: once at start and then
// every interval.
type HealthProber struct {
	prober   Prober
	interval time.Duration

	logger *logger.Logger
}

func NewHealthProber(interval time.Duration, prober Prober, logger *logger.Logger) *HealthProber {
	return &HealthProber{
		prober:   prober,
		interval: interval,
		logger:   logger,
	}
}

func (p *HealthProber) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health prober started")
	defer p.logger.Info().Msg("health prober stopped")

	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

// probe bounds a single probe by the interval so that a hanging storage
// cannot stall the loop.
func (p *HealthProber) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	p.prober.Probe(ctx)
}
