package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// AddShipmentCommandHandler registers new shipment records. The caller
// must hold manager or administrator authority; the id is allocated from
// the counter inside the same transaction, so a failed registration never
// consumes an id.
type AddShipmentCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAddShipmentCommandHandler creates a handler for shipment
// registration.
func NewAddShipmentCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) AddShipmentCommandHandler {
	return AddShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle allocates the next id, stores the record in ShipmentAdded status,
// emits shipment-created, and returns the new id.
func (h AddShipmentCommandHandler) Handle(ctx context.Context, cmd AddShipmentCommand) (kernel.ShipmentID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accessControl, err := uow.AccessRepository().Get(ctx)
	if err != nil {
		return 0, err
	}
	if !accessControl.IsManagerOrAdmin(cmd.Caller()) {
		return 0, errs.NewUnauthorizedError(cmd.Caller().String(), "add shipment")
	}

	shipmentRepo := uow.ShipmentRepository()
	id, err := shipmentRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	record, err := shipment.NewShipment(id, cmd.Location())
	if err != nil {
		return 0, err
	}

	if err = shipmentRepo.Add(ctx, record); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if err = publishAndClear(ctx, h.publisher, record); err != nil {
		return 0, err
	}

	return record.ID(), nil
}
