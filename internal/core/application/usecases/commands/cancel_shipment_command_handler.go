package commands

import (
	"context"

	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// CancelShipmentCommandHandler processes cancellations. This is the only
// path through which a shipment can reach Cancelled.
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCancelShipmentCommandHandler creates a handler for cancellations.
func NewCancelShipmentCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle sets the record to Cancelled and emits shipment-cancelled.
// Fails with Unauthorized when the caller is not a manager or the
// administrator, NotFound when the id was never assigned, and InvalidState
// when the record is already terminal.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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
	if !accessControl.IsManagerOrAdmin(cmd.Caller()) {
		return errs.NewUnauthorizedError(cmd.Caller().String(), "cancel shipment")
	}

	shipmentRepo := uow.ShipmentRepository()
	record, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = record.Cancel(); err != nil {
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
