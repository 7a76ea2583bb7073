package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// AddManagerCommandHandler processes manager role grants.
type AddManagerCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewAddManagerCommandHandler creates a handler for manager grants.
func NewAddManagerCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) AddManagerCommandHandler {
	return AddManagerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle grants the manager role and emits manager-added on success.
func (h AddManagerCommandHandler) Handle(ctx context.Context, cmd AddManagerCommand) error {
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

	if err = accessControl.AddManager(cmd.Caller(), cmd.Identity()); err != nil {
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
