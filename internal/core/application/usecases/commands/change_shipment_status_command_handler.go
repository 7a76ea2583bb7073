package commands

import (
	"context"

	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// ChangeShipmentStatusCommandHandler processes general status transitions.
// Any authority tier may advance a shipment; the aggregate enforces the
// terminal-state lock and the Cancelled exclusion.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewChangeShipmentStatusCommandHandler creates a handler for status
// transitions.
func NewChangeShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle moves the record to the target status and emits
// shipment-state-changed carrying the effective location. Distinct
// failures: Unauthorized (caller holds no role, or the target status is
// Cancelled), NotFound (id never assigned), InvalidState (record is
// terminal).
func (h ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
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

	accessControl, err := uow.AccessRepository().Get(ctx)
	if err != nil {
		return err
	}
	if !accessControl.IsEmployeeManagerOrAdmin(cmd.Caller()) {
		return errs.NewUnauthorizedError(cmd.Caller().String(), "change shipment status")
	}

	shipmentRepo := uow.ShipmentRepository()
	record, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = record.ChangeStatus(cmd.Status(), cmd.Location()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishAndClear(ctx, h.publisher, record)
}
