// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	started  chan struct{}
	once     sync.Once
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{})}
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	m.once.Do(func() { close(m.started) })
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := newMockWorker(), newMockWorker(), newMockWorker()

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker[%d] was not started", i)
		}
	}

	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Stop_WithoutRun(t *testing.T) {
	ws := &Workers{}

	// Should not panic when Run was never called
	ws.Stop()
}

func TestWorkers_ParentContextCancellation(t *testing.T) {
	w := newMockWorker()
	ctx, cancel := context.WithCancel(context.Background())

	ws := NewWorkers(w)
	ws.Run(ctx)
	<-w.started

	cancel()
	done := make(chan struct{})
	go func() {
		ws.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after parent context cancellation")
	}
}
