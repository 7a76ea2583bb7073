package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand moves a shipment to a new lifecycle status
// through the general transition path, optionally updating its location.
// Employee, manager, or administrator authority is required. Assigning
// Cancelled through this command always fails; cancellation has its own
// manager-gated command.
//
// When no location is supplied the previous one is retained and echoed in
// the emitted notification.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Identity
	shipmentID kernel.ShipmentID
	status     shipment.Status
	location   *kernel.Location

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a status-change command.
// The caller identity, shipment id, and target status must be valid;
// location is optional and validated when present.
func NewChangeShipmentStatusCommand(
	caller kernel.Identity,
	shipmentID kernel.ShipmentID,
	status shipment.Status,
	location *kernel.Location,
) (ChangeShipmentStatusCommand, error) {
	cmd := ChangeShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
		cmd.setLocation(location),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c ChangeShipmentStatusCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the id of the record to transition.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

// Status returns the target lifecycle status.
func (c ChangeShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

// Location returns the new location, or nil when the previous location is
// to be retained.
func (c ChangeShipmentStatusCommand) Location() *kernel.Location {
	if c.location == nil {
		return nil
	}
	loc := *c.location
	return &loc
}

func (c *ChangeShipmentStatusCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ChangeShipmentStatusCommand) setShipmentID(id kernel.ShipmentID) error {
	// Non-positive ids are never assigned: not found, not invalid input.
	if err := id.Validate(); err != nil {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}
	c.shipmentID = id
	return nil
}

func (c *ChangeShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeShipmentStatusCommand) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	c.location = &loc
	return nil
}
