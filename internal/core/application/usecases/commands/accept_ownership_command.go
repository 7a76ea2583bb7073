package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrAcceptOwnershipCommandIsNotConstructed = errors.New(
	"AcceptOwnershipCommand must be created via NewAcceptOwnershipCommand constructor",
)

// AcceptOwnershipCommand completes the two-phase ownership transfer. The
// caller must be the currently nominated successor; on success the
// administrator identity changes and an ownership-changed notification is
// emitted.
type AcceptOwnershipCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Identity

	guard guard.ConstructorGuard
}

// NewAcceptOwnershipCommand creates a command accepting an outstanding
// ownership nomination. The caller identity must be valid.
func NewAcceptOwnershipCommand(caller kernel.Identity) (AcceptOwnershipCommand, error) {
	cmd := AcceptOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCaller(caller); err != nil {
		return AcceptOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOwnershipCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c AcceptOwnershipCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *AcceptOwnershipCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
