package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// AcceptOwnershipCommandHandler finalizes administrator succession. The
// pending candidate confirms receipt of authority; any other caller fails
// with Unauthorized and the administrator stays unchanged.
type AcceptOwnershipCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptOwnershipCommandHandler creates a handler for ownership
// acceptance.
func NewAcceptOwnershipCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) AcceptOwnershipCommandHandler {
	return AcceptOwnershipCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle replaces the administrator with the accepted candidate, consumes
// the pending slot, and emits the ownership-changed notification carrying
// the previous and new administrator.
func (h AcceptOwnershipCommandHandler) Handle(ctx context.Context, cmd AcceptOwnershipCommand) error {
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

	if err = accessControl.AcceptOwnership(cmd.Caller()); err != nil {
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
