package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates and the id counter they are keyed by.
type ShipmentRepository interface {
	// NextID allocates the next shipment identifier from the monotonic
	// counter. Allocation happens inside the surrounding transaction, so
	// a rolled-back operation does not consume an id.
	NextID(ctx context.Context) (kernel.ShipmentID, error)

	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id.
	// Returns ObjectNotFound when the id was never assigned.
	Get(ctx context.Context, id kernel.ShipmentID) (*shipment.Shipment, error)
}
