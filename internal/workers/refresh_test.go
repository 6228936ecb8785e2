package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestRefreshWorker_RefreshesOnTick(t *testing.T) {
	r := &countingRefresher{}
	w := NewRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, time.Millisecond)
	w.Stop()

	stopped := r.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, r.calls.Load(), "no refresh after Stop")
}

func TestRefreshWorker_KeepsRunningAfterFailure(t *testing.T) {
	r := &countingRefresher{err: errors.New("database is locked")}
	w := NewRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestRefreshWorker_StopsOnContextCancel(t *testing.T) {
	r := &countingRefresher{}
	w := NewRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	// Stop must return once the goroutine noticed the cancellation
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestRefreshWorker_StopWithoutStart(t *testing.T) {
	w := NewRefreshWorker(&countingRefresher{}, 0, logger.Nop())
	assert.NotPanics(t, w.Stop)
	assert.Equal(t, defaultRefreshInterval, w.(*refreshWorker).interval)
}

func TestRefreshWorker_RestartReplacesLoop(t *testing.T) {
	r := &countingRefresher{}
	w := NewRefreshWorker(r, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	w.Stop()

	assert.Nil(t, w.(*refreshWorker).cancel)
}
