package jobs

import (
	"fmt"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenBoardJob *KitchenBoardJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenBoardJob: NewKitchenBoardJob(getActiveOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenBoardJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen board job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenBoardJob.Stop()
}
