package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler lists the current state of every shipment
// record using direct SQL reads.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for full shipment
// listings. Requires a GORM database connection for query execution.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the listing, ordered by id.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
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
		ORDER BY id
	`))
}

// scanShipmentRows converts raw shipment rows into read models, shared by
// the listing handlers.
func scanShipmentRows(tx *gorm.DB) ([]ShipmentStatusResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentStatusResponse, 0)
	for rows.Next() {
		var response ShipmentStatusResponse
		var id int64
		var status int

		if err = rows.Scan(&id, &status, &response.Location); err != nil {
			return nil, err
		}

		response.ID = kernel.ShipmentID(id)
		response.Status = shipment.Status(status)
		if err = response.Status.Validate(); err != nil {
			return nil, err
		}

		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
