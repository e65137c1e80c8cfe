package limiter

import "time"

// FixedWindow allows at most Limit hits per client within each window.
type FixedWindow struct {
	name  string
	limit int
	*counter
}

// NewFixedWindow creates a limiter named name allowing limit hits per window.
func NewFixedWindow(name string, limit int, window time.Duration, opts ...Option) *FixedWindow {
	return &FixedWindow{
		name:    name,
		limit:   limit,
		counter: newCounter(name, window, newOptions(opts)),
	}
}

// Name returns the name the limiter was created with.
func (l *FixedWindow) Name() string { return l.name }

// Limit returns the number of hits allowed per window.
func (l *FixedWindow) Limit() int { return l.limit }

// Window returns the window length.
func (l *FixedWindow) Window() time.Duration { return l.length }

// Allow counts a hit of key. Skipped keys are always allowed and not counted.
func (l *FixedWindow) Allow(key string) Result {
	if l.skipped(key) {
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit, Reset: l.length}
	}

	hits, reset := l.hit(key)
	return Result{
		Allowed:   hits <= l.limit,
		Limit:     l.limit,
		Hits:      hits,
		Remaining: max(l.limit-hits, 0),
		Reset:     reset,
	}
}

// Skipped reports whether key is exempt from throttling.
func (l *FixedWindow) Skipped(key string) bool { return l.skipped(key) }

// Cleanup evicts ended windows and returns how many were evicted.
func (l *FixedWindow) Cleanup() int { return l.cleanup() }

// Size returns the number of tracked clients.
func (l *FixedWindow) Size() int { return l.size() }
