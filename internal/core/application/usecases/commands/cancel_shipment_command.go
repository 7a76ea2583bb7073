package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand cancels a non-terminal shipment through the
// dedicated cancel path. Manager-or-admin; the record's location is left
// untouched.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Identity
	shipmentID kernel.ShipmentID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a cancellation command.
// The caller identity and shipment id must be valid.
func NewCancelShipmentCommand(caller kernel.Identity, shipmentID kernel.ShipmentID) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c CancelShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the id of the record to cancel.
func (c CancelShipmentCommand) ShipmentID() kernel.ShipmentID {
	return c.shipmentID
}

func (c *CancelShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CancelShipmentCommand) setShipmentID(id kernel.ShipmentID) error {
	// Non-positive ids are never assigned: not found, not invalid input.
	if err := id.Validate(); err != nil {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}
	c.shipmentID = id
	return nil
}
