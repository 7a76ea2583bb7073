// Package jobs provides scheduled background tasks for the shipment tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. ShipmentAuditJob - Periodically logs a snapshot of all shipments
// still in flight, giving operators a heartbeat of outstanding custody.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activeShipmentsHandler, auditCronSpec, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit schedule comes from configuration as a six-field cron
// expression (seconds included). When unset, the job falls back to
// "0 * * * * *": the top of every minute.
//
// # Error Handling
//
// Jobs are strictly read-only: they never mutate shipments or role
// assignments, so a failed run only loses one audit line. Errors are
// logged and the next scheduled run proceeds as usual.
package jobs
