package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// AddEmployeeCommandHandler processes employee role grants.
type AddEmployeeCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewAddEmployeeCommandHandler creates a handler for employee grants.
func NewAddEmployeeCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) AddEmployeeCommandHandler {
	return AddEmployeeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle grants the employee role and emits employee-added on success.
func (h AddEmployeeCommandHandler) Handle(ctx context.Context, cmd AddEmployeeCommand) error {
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

	if err = accessControl.AddEmployee(cmd.Caller(), cmd.Identity()); err != nil {
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
