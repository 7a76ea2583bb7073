package jobs

import (
	"fmt"
	"log/slog"

	"shiptrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentAuditJob *ShipmentAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution;
// auditCronSpec sets the audit schedule, empty for the default.
func NewJobManager(
	activeShipmentsHandler queries.GetActiveShipmentsQueryHandler,
	auditCronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentAuditJob: NewShipmentAuditJob(activeShipmentsHandler, auditCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentAuditJob.Stop()
}
