package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled or Stop is called.
func (w *Workers) Run(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Stop cancels all workers and waits for them to return.
func (w *Workers) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
