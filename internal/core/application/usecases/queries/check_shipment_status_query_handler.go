package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// CheckShipmentStatusQueryHandler retrieves a shipment's current state
// directly from the database. Uses direct SQL for optimal read performance
// in the CQRS pattern.
type CheckShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewCheckShipmentStatusQueryHandler creates a handler for shipment status
// lookups. Requires a GORM database connection for query execution.
func NewCheckShipmentStatusQueryHandler(db *gorm.DB) CheckShipmentStatusQueryHandler {
	return CheckShipmentStatusQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFound when the id was never
// assigned.
func (h CheckShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query CheckShipmentStatusQuery,
) (ShipmentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentStatusResponse{}, err
	}

	var response ShipmentStatusResponse
	var id int64
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location
		FROM shipments
		WHERE id = ?
	`, int64(query.ShipmentID())).Row()

	err := row.Scan(&id, &status, &response.Location)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ShipmentStatusResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}
	if err != nil {
		return ShipmentStatusResponse{}, err
	}

	response.ID = kernel.ShipmentID(id)
	response.Status = shipment.Status(status)
	if err = response.Status.Validate(); err != nil {
		return ShipmentStatusResponse{}, err
	}

	return response, nil
}
