package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler lists shipments that have not reached a
// terminal status.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment
// listings. Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the listing, excluding Delivered and Cancelled records,
// ordered by id.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]ShipmentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanShipmentRows(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, int(shipment.Delivered), int(shipment.Cancelled)))
}
