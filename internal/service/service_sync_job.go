package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls syncService.FlushOfflineStories on
// a ticker. The job is idle until Start is called.
func NewSyncJob(syncService SyncService, logger *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: logger}
}

// Start implements SyncJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.syncService.FlushOfflineStories(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).
						Str("func", "syncJob.Start").
						Msg("periodic offline flush failed")
				}
			}
		}
	}()
}

// Stop implements SyncJob. It is a no-op when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
