package limiter

import "time"

// SlowDown never rejects a request: once a client exceeds delayAfter hits in
// a window, every further hit is delayed by hits*step.
type SlowDown struct {
	name       string
	delayAfter int
	step       time.Duration
	*counter
}

// NewSlowDown creates a slow-down policy named name.
func NewSlowDown(name string, delayAfter int, step, window time.Duration, opts ...Option) *SlowDown {
	return &SlowDown{
		name:       name,
		delayAfter: delayAfter,
		step:       step,
		counter:    newCounter(name, window, newOptions(opts)),
	}
}

// Name returns the name the policy was created with.
func (s *SlowDown) Name() string { return s.name }

// Delay counts a hit of key and returns how long the request must wait.
func (s *SlowDown) Delay(key string) time.Duration {
	if s.skipped(key) {
		return 0
	}

	hits, _ := s.hit(key)
	if hits <= s.delayAfter {
		return 0
	}
	return time.Duration(hits) * s.step
}

// Cleanup evicts ended windows and returns how many were evicted.
func (s *SlowDown) Cleanup() int { return s.cleanup() }

// Size returns the number of tracked clients.
func (s *SlowDown) Size() int { return s.size() }
