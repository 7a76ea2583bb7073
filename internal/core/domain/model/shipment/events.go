package shipment

import "shiptrack/internal/core/domain/model/kernel"

// ShipmentCreated is raised when a new shipment record is registered.
type ShipmentCreated struct {
	ID       kernel.ShipmentID
	Location kernel.Location
}

// EventName implements kernel.DomainEvent.
func (ShipmentCreated) EventName() string { return "shipment-created" }

// ShipmentStatusChanged is raised on every successful status change through
// the general transition path. Location carries the effective location: the
// new value when one was supplied, otherwise the retained previous one.
type ShipmentStatusChanged struct {
	ID       kernel.ShipmentID
	Status   Status
	Location kernel.Location
}

// EventName implements kernel.DomainEvent.
func (ShipmentStatusChanged) EventName() string { return "shipment-state-changed" }

// ShipmentCancelled is raised when a shipment is cancelled through the
// dedicated cancel path.
type ShipmentCancelled struct {
	ID kernel.ShipmentID
}

// EventName implements kernel.DomainEvent.
func (ShipmentCancelled) EventName() string { return "shipment-cancelled" }
