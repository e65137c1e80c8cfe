// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and then returns. Workers are started in
// their own goroutines by [Workers.Run].
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper evicts expired state and reports how many entries were removed.
// It is implemented by the rate limiters.
type Sweeper interface {
	Name() string
	Cleanup() int
}

// Prober refreshes a health status. It is implemented by the gRPC health
// handler.
type Prober interface {
	Probe(ctx context.Context)
}
