// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/logger"
)

const defaultRefreshInterval = 30 * time.Second

type refreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a Worker that calls refresher.Refresh on a
// ticker, picking up changes other processes made to the shared store.
// A zero or negative interval defaults to 30 seconds. The worker is idle
// until Start is called.
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &refreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

// Start implements Worker. It stops any previously running loop first.
// A failed refresh is logged and the cache keeps its previous contents.
func (w *refreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.refresher.Refresh(jobCtx); err != nil && jobCtx.Err() == nil {
					w.logger.Warn().Err(err).Str("func", "*refreshWorker.Start").Msg("inventory refresh failed")
				}
			}
		}
	}()
}

// Stop implements Worker.
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
