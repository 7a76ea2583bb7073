package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrFireManagerCommandIsNotConstructed = errors.New(
	"FireManagerCommand must be created via NewFireManagerCommand constructor",
)

// FireManagerCommand revokes the manager role from an identity.
// Admin-only; firing an identity that is not a manager fails with NotFound.
type FireManagerCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewFireManagerCommand creates a command revoking the manager role from
// identity. Both identities must be valid.
func NewFireManagerCommand(caller, identity kernel.Identity) (FireManagerCommand, error) {
	cmd := FireManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setIdentity(identity),
	); err != nil {
		return FireManagerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FireManagerCommand) Validate() error {
	return c.guard.Validate(ErrFireManagerCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c FireManagerCommand) Caller() kernel.Identity {
	return c.caller
}

// Identity returns the identity losing the manager role.
func (c FireManagerCommand) Identity() kernel.Identity {
	return c.identity
}

func (c *FireManagerCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *FireManagerCommand) setIdentity(identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	c.identity = identity
	return nil
}
