// Package notifier emits the tracker's structured change notifications.
// The tracker only emits; delivering notifications to external subscribers
// is the hosting environment's concern. SlogPublisher renders each domain
// event as a structured log record, which external collectors can tail.
package notifier

import (
	"context"
	"log/slog"

	"shiptrack/internal/core/domain/model/access"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// SlogPublisher implements ports.EventPublisher on top of log/slog.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a publisher writing to the given logger.
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	return &SlogPublisher{
		logger: logger.With("component", "notifier"),
	}
}

// Publish emits one structured record per event. It never fails; the
// record carries the event name plus the event's fields.
func (p *SlogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, event.EventName(), eventAttrs(event)...)
	}
	return nil
}

// eventAttrs flattens a domain event into log attributes.
func eventAttrs(event kernel.DomainEvent) []any {
	switch e := event.(type) {
	case access.OwnershipTransferred:
		return []any{"previous_admin", e.Previous.String(), "new_admin", e.New.String()}
	case access.ManagerAdded:
		return []any{"identity", e.Identity.String()}
	case access.ManagerRemoved:
		return []any{"identity", e.Identity.String()}
	case access.EmployeeAdded:
		return []any{"identity", e.Identity.String()}
	case access.EmployeeRemoved:
		return []any{"identity", e.Identity.String()}
	case shipment.ShipmentCreated:
		return []any{"shipment_id", int64(e.ID), "location", e.Location.String()}
	case shipment.ShipmentStatusChanged:
		return []any{"shipment_id", int64(e.ID), "status", e.Status.String(), "location", e.Location.String()}
	case shipment.ShipmentCancelled:
		return []any{"shipment_id", int64(e.ID)}
	default:
		return nil
	}
}
