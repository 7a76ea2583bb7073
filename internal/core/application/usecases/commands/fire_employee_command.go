package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrFireEmployeeCommandIsNotConstructed = errors.New(
	"FireEmployeeCommand must be created via NewFireEmployeeCommand constructor",
)

// FireEmployeeCommand revokes the employee role from an identity.
// Callable by any employee, manager, or the administrator; firing an
// identity that is not an employee fails with NotFound.
type FireEmployeeCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewFireEmployeeCommand creates a command revoking the employee role from
// identity. Both identities must be valid.
func NewFireEmployeeCommand(caller, identity kernel.Identity) (FireEmployeeCommand, error) {
	cmd := FireEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setIdentity(identity),
	); err != nil {
		return FireEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FireEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrFireEmployeeCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c FireEmployeeCommand) Caller() kernel.Identity {
	return c.caller
}

// Identity returns the identity losing the employee role.
func (c FireEmployeeCommand) Identity() kernel.Identity {
	return c.identity
}

func (c *FireEmployeeCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *FireEmployeeCommand) setIdentity(identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	c.identity = identity
	return nil
}
