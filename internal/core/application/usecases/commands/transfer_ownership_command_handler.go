package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// TransferOwnershipCommandHandler processes administrator succession
// nominations. Only the current administrator may nominate; the nomination
// is stored in the pending-transfer slot and emits no notification until
// accepted.
type TransferOwnershipCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewTransferOwnershipCommandHandler creates a handler for ownership
// nominations.
func NewTransferOwnershipCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) TransferOwnershipCommandHandler {
	return TransferOwnershipCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle records the nomination in the pending-transfer slot, overwriting
// any prior candidate. Fails with Unauthorized when the caller is not the
// current administrator.
func (h TransferOwnershipCommandHandler) Handle(ctx context.Context, cmd TransferOwnershipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accessRepo := uow.AccessRepository()
	accessControl, err := accessRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = accessControl.TransferOwnership(cmd.Caller(), cmd.Candidate()); err != nil {
		return err
	}

	if err = accessRepo.Save(ctx, accessControl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishAndClear(ctx, h.publisher, accessControl)
}
