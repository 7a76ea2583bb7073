package jobs

import (
	"context"
	"log/slog"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// defaultAuditCronSpec runs the audit at the top of every minute.
const defaultAuditCronSpec = "0 * * * * *"

// ShipmentAuditJob periodically logs every shipment that has not reached a
// terminal state. Never mutates tracker state.
type ShipmentAuditJob struct {
	handler  queries.GetActiveShipmentsQueryHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShipmentAuditJob creates a new job for auditing in-flight shipments.
// Uses GetActiveShipmentsQueryHandler to read the shipment records on the
// given cron schedule (six-field spec with seconds); an empty cronSpec
// falls back to running once a minute.
func NewShipmentAuditJob(
	handler queries.GetActiveShipmentsQueryHandler,
	cronSpec string,
	logger *slog.Logger,
) *ShipmentAuditJob {
	if cronSpec == "" {
		cronSpec = defaultAuditCronSpec
	}

	return &ShipmentAuditJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shipment_audit_job"),
	}
}

// Start begins the shipment audit job on the configured schedule.
func (j *ShipmentAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		shipments, err := j.handler.Handle(ctx, queries.NewGetActiveShipmentsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Shipment audit job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Shipment audit", "active", len(shipments))
		for _, record := range shipments {
			j.logger.InfoContext(ctx, "Shipment in flight",
				"id", record.ID.String(),
				"status", record.Status.String(),
				"location", record.Location,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment audit job started", "cron_spec", j.cronSpec)
	return nil
}

// Stop stops the shipment audit job.
func (j *ShipmentAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment audit job stopped")
}
