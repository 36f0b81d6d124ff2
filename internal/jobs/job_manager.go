package jobs

import (
	"fmt"
	"log/slog"

	"lockers/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	availabilityAuditJob *AvailabilityAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	violationsHandler queries.GetAvailabilityViolationsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		availabilityAuditJob: NewAvailabilityAuditJob(violationsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.availabilityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start availability audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.availabilityAuditJob.Stop()
}
