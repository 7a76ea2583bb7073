package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// FireEmployeeCommandHandler processes employee role revocations,
// including the permissive employee self-service path.
type FireEmployeeCommandHandler struct {
	uowFactory AccessUoWFactory
	publisher  ports.EventPublisher
}

// NewFireEmployeeCommandHandler creates a handler for employee
// revocations.
func NewFireEmployeeCommandHandler(
	uowFactory AccessUoWFactory,
	publisher ports.EventPublisher,
) FireEmployeeCommandHandler {
	return FireEmployeeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle revokes the employee role and emits employee-removed on success.
func (h FireEmployeeCommandHandler) Handle(ctx context.Context, cmd FireEmployeeCommand) error {
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

	if err = accessControl.FireEmployee(cmd.Caller(), cmd.Identity()); err != nil {
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
