// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
)

// LimiterSweeper periodically evicts ended rate-limit windows so that the
// limiters do not grow with every client ever seen.
type LimiterSweeper struct {
	sweepers []Sweeper
	interval time.Duration

	logger *logger.Logger
}

func NewLimiterSweeper(interval time.Duration, logger *logger.Logger, sweepers ...Sweeper) *LimiterSweeper {
	return &LimiterSweeper{
		sweepers: sweepers,
		interval: interval,
		logger:   logger,
	}
}

func (s *LimiterSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("limiter sweeper started")
	defer s.logger.Info().Msg("limiter sweeper stopped")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs one eviction pass over every limiter.
func (s *LimiterSweeper) Sweep() int {
	total := 0
	for _, sweeper := range s.sweepers {
		evicted := sweeper.Cleanup()
		if evicted > 0 {
			s.logger.Debug().Str("limiter", sweeper.Name()).Int("evicted", evicted).Msg("rate-limit windows evicted")
		}
		total += evicted
	}
	return total
}
