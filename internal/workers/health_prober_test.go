package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProber struct {
	calls       atomic.Int32
	hadDeadline atomic.Bool
}

func (p *countingProber) Probe(ctx context.Context) {
	_, ok := ctx.Deadline()
	p.hadDeadline.Store(ok)
	p.calls.Add(1)
}

func TestHealthProber_ProbesImmediately(t *testing.T) {
	p := &countingProber{}
	ws := NewWorkers(NewHealthProber(time.Hour, p, logger.Nop()))

	ws.Run(context.Background())
	require.Eventually(t, func() bool { return p.calls.Load() == 1 }, time.Second, time.Millisecond)
	ws.Stop()

	assert.Equal(t, int32(1), p.calls.Load())
	assert.True(t, p.hadDeadline.Load())
}

func TestHealthProber_ProbesPeriodically(t *testing.T) {
	p := &countingProber{}
	ws := NewWorkers(NewHealthProber(5*time.Millisecond, p, logger.Nop()))

	ws.Run(context.Background())
	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, time.Millisecond)
	ws.Stop()
}
