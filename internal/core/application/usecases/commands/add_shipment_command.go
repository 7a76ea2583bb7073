package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrAddShipmentCommandIsNotConstructed = errors.New(
	"AddShipmentCommand must be created via NewAddShipmentCommand constructor",
)

// AddShipmentCommand registers a new shipment record at the given
// location. Manager-or-admin; the handler allocates the next id from the
// monotonic counter and returns it.
//
// Example:
//
//	loc, err := kernel.NewLocation("Dock 4, Hamburg")
//	if err != nil {
//	    return fmt.Errorf("invalid location: %w", err)
//	}
//	cmd, _ := NewAddShipmentCommand(manager, loc)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to register shipment: %w", err)
//	}
//	fmt.Printf("shipment %d registered", id)
type AddShipmentCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewAddShipmentCommand creates a command registering a shipment at
// location. The caller identity and the location must be valid.
func NewAddShipmentCommand(caller kernel.Identity, location kernel.Location) (AddShipmentCommand, error) {
	cmd := AddShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setLocation(location),
	); err != nil {
		return AddShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c AddShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// Location returns the initial shipment location.
func (c AddShipmentCommand) Location() kernel.Location {
	return c.location
}

func (c *AddShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddShipmentCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
