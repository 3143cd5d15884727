package jobs

import (
	"fmt"
)

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	dispatchRetryJob *DispatchRetryJob
}

func NewJobManager(dispatchRetryJob *DispatchRetryJob) *JobManager {
	return &JobManager{dispatchRetryJob: dispatchRetryJob}
}

func (jm *JobManager) StartAll() error {
	if err := jm.dispatchRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch retry job: %w", err)
	}
	return nil
}

// StopAll blocks until running jobs return.
func (jm *JobManager) StopAll() {
	jm.dispatchRetryJob.Stop()
}
