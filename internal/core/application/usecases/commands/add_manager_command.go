package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrAddManagerCommandIsNotConstructed = errors.New(
	"AddManagerCommand must be created via NewAddManagerCommand constructor",
)

// AddManagerCommand grants the manager role to an identity. Admin-only;
// adding an identity that is already a manager fails with AlreadyExists.
type AddManagerCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewAddManagerCommand creates a command granting identity the manager
// role. Both identities must be valid.
func NewAddManagerCommand(caller, identity kernel.Identity) (AddManagerCommand, error) {
	cmd := AddManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setIdentity(identity),
	); err != nil {
		return AddManagerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddManagerCommand) Validate() error {
	return c.guard.Validate(ErrAddManagerCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c AddManagerCommand) Caller() kernel.Identity {
	return c.caller
}

// Identity returns the identity receiving the manager role.
func (c AddManagerCommand) Identity() kernel.Identity {
	return c.identity
}

func (c *AddManagerCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddManagerCommand) setIdentity(identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	c.identity = identity
	return nil
}
