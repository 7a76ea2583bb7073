package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrTransferOwnershipCommandIsNotConstructed = errors.New(
	"TransferOwnershipCommand must be created via NewTransferOwnershipCommand constructor",
)

// TransferOwnershipCommand nominates a successor administrator. The
// nomination overwrites any prior pending candidate and takes effect only
// when the candidate accepts.
//
// Example:
//
//	cmd, err := NewTransferOwnershipCommand(admin, successor)
//	if err != nil {
//	    return fmt.Errorf("invalid nomination: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("nomination failed: %w", err)
//	}
type TransferOwnershipCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Identity
	candidate kernel.Identity

	guard guard.ConstructorGuard
}

// NewTransferOwnershipCommand creates a command nominating candidate as
// the successor administrator. Both identities must be valid.
func NewTransferOwnershipCommand(caller, candidate kernel.Identity) (TransferOwnershipCommand, error) {
	cmd := TransferOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCandidate(candidate),
	); err != nil {
		return TransferOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrTransferOwnershipCommandIsNotConstructed)
}

// Caller returns the identity invoking the operation.
func (c TransferOwnershipCommand) Caller() kernel.Identity {
	return c.caller
}

// Candidate returns the nominated successor administrator.
func (c TransferOwnershipCommand) Candidate() kernel.Identity {
	return c.candidate
}

func (c *TransferOwnershipCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *TransferOwnershipCommand) setCandidate(candidate kernel.Identity) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	c.candidate = candidate
	return nil
}
