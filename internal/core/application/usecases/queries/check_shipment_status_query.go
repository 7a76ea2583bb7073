// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries return current-state read models only; the tracker
// keeps no history beyond the latest state of each record.
package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCheckShipmentStatusQueryIsNotConstructed = errors.New(
	"CheckShipmentStatusQuery must be created via NewCheckShipmentStatusQuery constructor",
)

// CheckShipmentStatusQuery looks up the current status and location of a
// shipment by id. The read is unrestricted: external observers may check
// any shipment without holding a role.
//
// Example:
//
//	query, err := NewCheckShipmentStatusQuery(7)
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // id 7 was never assigned
//	}
type CheckShipmentStatusQuery struct {
	shipmentID kernel.ShipmentID

	guard guard.ConstructorGuard
}

// NewCheckShipmentStatusQuery creates a status lookup for the given id.
// Non-positive ids are never assigned, so looking one up fails the same
// way as any other missing record: object not found.
func NewCheckShipmentStatusQuery(shipmentID kernel.ShipmentID) (CheckShipmentStatusQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return CheckShipmentStatusQuery{}, errs.NewObjectNotFoundError("shipment", shipmentID.String())
	}

	return CheckShipmentStatusQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrCheckShipmentStatusQueryIsNotConstructed)
}

// ShipmentID returns the id being looked up.
func (q CheckShipmentStatusQuery) ShipmentID() kernel.ShipmentID {
	return q.shipmentID
}

// ShipmentStatusResponse is the read model for a single shipment's current
// state.
type ShipmentStatusResponse struct {
	ID       kernel.ShipmentID
	Status   shipment.Status
	Location string
}
