package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrAddEmployeeCommandIsNotConstructed = errors.New(
	"AddEmployeeCommand must be created via NewAddEmployeeCommand constructor",
)

// AddEmployeeCommand grants the employee role to an identity.
// Manager-or-admin; adding an identity that is already an employee fails
// with AlreadyExists.
type AddEmployeeCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewAddEmployeeCommand creates a command granting identity the employee
// role. Both identities must be valid.
func NewAddEmployeeCommand(caller, identity kernel.Identity) (AddEmployeeCommand, error) {
	cmd := AddEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setIdentity(identity),
	); err != nil {
		return AddEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAddEmployeeCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c AddEmployeeCommand) Caller() kernel.Identity {
	return c.caller
}

// Identity returns the identity receiving the employee role.
func (c AddEmployeeCommand) Identity() kernel.Identity {
	return c.identity
}

func (c *AddEmployeeCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddEmployeeCommand) setIdentity(identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	c.identity = identity
	return nil
}
