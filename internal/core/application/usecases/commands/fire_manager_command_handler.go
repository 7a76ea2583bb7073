package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// FireManagerCommandHandler processes manager role revocations.
type FireManagerCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewFireManagerCommandHandler creates a handler for manager revocations.
func NewFireManagerCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) FireManagerCommandHandler {
	return FireManagerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle revokes the manager role and emits manager-removed on success.
func (h FireManagerCommandHandler) Handle(ctx context.Context, cmd FireManagerCommand) error {
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

	if err = accessControl.FireManager(cmd.Caller(), cmd.Identity()); err != nil {
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
