// ABOUTME: Refresh worker handles periodic background rebuilding of the snapshot
// ABOUTME: Keeps the cached feed warm so read requests rarely pay for a live fetch

package workers

import (
	"context"
	"sync"
	"time"

	"episodes-app-api/core/domain"
	"episodes-app-api/core/interfaces"
)

// Refresher is the slice of the podcast service the worker needs
type Refresher interface {
	Refresh(ctx context.Context) domain.PodcastData
}

// RefreshWorkerConfig holds configuration for the refresh worker
type RefreshWorkerConfig struct {
	// Interval between refresh runs
	Interval time.Duration

	// Timeout bounds a single refresh run
	Timeout time.Duration
}

// DefaultRefreshWorkerConfig returns the default worker configuration
func DefaultRefreshWorkerConfig() RefreshWorkerConfig {
	return RefreshWorkerConfig{
		Interval: 30 * time.Minute,
		Timeout:  2 * time.Minute,
	}
}

// RefreshWorker periodically rebuilds the merged snapshot in the background
type RefreshWorker struct {
	refresher Refresher
	logger    interfaces.Logger
	interval  time.Duration
	timeout   time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	running   bool
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(refresher Refresher, logger interfaces.Logger, config RefreshWorkerConfig) *RefreshWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultRefreshWorkerConfig().Interval
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultRefreshWorkerConfig().Timeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &RefreshWorker{
		refresher: refresher,
		logger:    logger,
		interval:  config.Interval,
		timeout:   config.Timeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the background loop. Calling Start on a running worker is a
// no-op.
func (w *RefreshWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.wg.Add(1)
	go w.run()

	w.running = true
	return nil
}

// Stop cancels the loop and waits for an in-flight refresh to finish
func (w *RefreshWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.cancel()
	w.wg.Wait()

	w.running = false
	return nil
}

// run fires one refresh per tick. The first refresh happens immediately so a
// cold start does not wait a full interval for data.
func (w *RefreshWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refreshOnce()

	for {
		select {
		case <-ticker.C:
			w.refreshOnce()
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *RefreshWorker) refreshOnce() {
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	defer cancel()

	data := w.refresher.Refresh(ctx)

	if w.logger != nil {
		w.logger.Info("Background refresh completed", map[string]interface{}{
			"episodes": len(data.Episodes),
			"source":   data.Source,
		})
	}
}
