// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter implements per-client request throttling: a fixed-window
// counter that rejects requests beyond a limit ([FixedWindow]) and a
// slow-down policy that delays them instead ([SlowDown]).
//
// Limiters hold no goroutines. Expired windows are evicted by calling
// Cleanup, which the limiter sweeper worker does periodically.
package limiter

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result describes the state of a client's window after a hit.
type Result struct {
	// Allowed is false when the hit exceeded the limit.
	Allowed bool

	// Limit is the number of hits allowed per window.
	Limit int

	// Hits is the number of hits in the current window, this one included.
	Hits int

	// Remaining is the number of hits left in the current window.
	Remaining int

	// Reset is the time left until the current window ends.
	Reset time.Duration
}

// Option configures a limiter.
type Option func(*options)

type options struct {
	skip     map[string]struct{}
	now      func() time.Time
	registry prometheus.Registerer
}

// WithSkip exempts the given client keys (IP addresses) from throttling.
func WithSkip(keys ...string) Option {
	return func(o *options) {
		for _, key := range keys {
			o.skip[key] = struct{}{}
		}
	}
}

// WithClock replaces time.Now. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRegistry registers a gauge of tracked clients with reg.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}

func newOptions(opts []Option) options {
	o := options{
		skip: make(map[string]struct{}),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// window is the hit counter of a single client.
type window struct {
	hits    int
	resetAt time.Time
}

// counter tracks fixed windows per client key. It is safe for concurrent use.
type counter struct {
	mu      sync.Mutex
	length  time.Duration
	windows map[string]*window
	now     func() time.Time
	skip    map[string]struct{}

	// clientsGauge is nil when no registry was provided.
	clientsGauge prometheus.Gauge
}

func newCounter(name string, length time.Duration, o options) *counter {
	c := &counter{
		length:  length,
		windows: make(map[string]*window),
		now:     o.now,
		skip:    o.skip,
	}

	if o.registry != nil {
		c.clientsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "rest_boilerplate_ratelimiter_clients",
			Help:        "Current number of clients tracked by a rate limiter",
			ConstLabels: prometheus.Labels{"limiter": name},
		})
		o.registry.MustRegister(c.clientsGauge)
	}

	return c
}

// hit counts one request of key and returns the hit count of its window
// together with the time left until the window resets.
func (c *counter) hit(key string) (int, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	w, ok := c.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(c.length)}
		c.windows[key] = w
	}
	w.hits++

	c.updateGauge()
	return w.hits, w.resetAt.Sub(now)
}

func (c *counter) skipped(key string) bool {
	_, ok := c.skip[key]
	return ok
}

// cleanup evicts windows that have ended and returns how many were evicted.
func (c *counter) cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, w := range c.windows {
		if !now.Before(w.resetAt) {
			delete(c.windows, key)
			evicted++
		}
	}

	c.updateGauge()
	return evicted
}

func (c *counter) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.windows)
}

// updateGauge must be called with mu held.
func (c *counter) updateGauge() {
	if c.clientsGauge != nil {
		c.clientsGauge.Set(float64(len(c.windows)))
	}
}
