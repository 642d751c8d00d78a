package service

import (
	"context"
	"sync"
	"time"
)

type reloadJob struct {
	tasks TaskListService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReloadJob creates a job that calls tasks.Load on a ticker. The job is
// idle until Start is called.
func NewReloadJob(tasks TaskListService) ReloadJob {
	return &reloadJob{tasks: tasks}
}

// Start implements ReloadJob. Load errors are logged by the service and do
// not stop the job.
func (j *reloadJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

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
				_ = j.tasks.Load(jobCtx)
			}
		}
	}()
}

// Stop implements ReloadJob. Safe to call when the job is not running.
func (j *reloadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
