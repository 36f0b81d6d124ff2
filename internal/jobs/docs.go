// Package jobs provides scheduled background tasks for the locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AvailabilityAuditJob - Runs every minute to flag lockers that are
// referenced by an assignment yet still marked available.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(violationsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job only observes and logs; it never mutates locker state. Query
// failures are logged and retried on the next tick.
package jobs
