package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleItemAlertJob *StaleItemAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleItemsHandler queries.GetStaleItemsQueryHandler,
	notifier ports.Notifier,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleItemAlertJob: NewStaleItemAlertJob(staleItemsHandler, notifier, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleItemAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale item alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleItemAlertJob.Stop()
}
