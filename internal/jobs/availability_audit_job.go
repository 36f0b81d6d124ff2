package jobs

import (
	"context"
	"log/slog"

	"lockers/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AvailabilityAuditJob periodically sweeps for lockers still flagged available
// while an assignment references them. The assignment flow makes that state
// unreachable on its own; a manual availability override can reintroduce it,
// so the sweep logs every occurrence for the coordinator to resolve.
type AvailabilityAuditJob struct {
	handler queries.GetAvailabilityViolationsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityAuditJob creates the audit job. It runs once a minute.
func NewAvailabilityAuditJob(handler queries.GetAvailabilityViolationsQueryHandler, logger *slog.Logger) *AvailabilityAuditJob {
	return &AvailabilityAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "availability_audit_job"),
	}
}

// Start begins the availability audit job.
func (j *AvailabilityAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		violations, err := j.handler.Handle(ctx, queries.NewGetAvailabilityViolationsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability audit failed", "error", err)
			return
		}

		for _, v := range violations {
			j.logger.WarnContext(ctx, "Locker is assigned but still flagged available",
				"lockerID", v.LockerID,
				"lockerNumber", v.LockerNumber,
				"assignments", v.Assignments,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability audit job started (running every minute)")
	return nil
}

// Stop stops the availability audit job.
func (j *AvailabilityAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability audit job stopped")
}
