package shipment

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for a tracked consignment.
//
// Shipment maintains these invariants:
//   - The id is positive and permanent; records are never deleted
//   - The location is always a validated 1-100 character string
//   - Once the status is terminal (Delivered or Cancelled) no further
//     mutation succeeds
//   - Cancelled is reachable only through Cancel, never through
//     ChangeStatus
type Shipment struct {
	id       kernel.ShipmentID
	status   Status
	location kernel.Location

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewShipment registers a new shipment record with the given id and
// initial location. The record starts in Added status and raises
// ShipmentCreated.
func NewShipment(id kernel.ShipmentID, location kernel.Location) (*Shipment, error) {
	s := &Shipment{
		status:        Added,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	s.raise(ShipmentCreated{ID: s.id, Location: s.location})
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence without raising
// events. All fields must be valid.
func RestoreShipment(id kernel.ShipmentID, status Status, location kernel.Location) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setStatus(status),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id == other.id
}

// ID returns the shipment's identifier.
func (s *Shipment) ID() kernel.ShipmentID {
	return s.id
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Location returns the current location.
func (s *Shipment) Location() kernel.Location {
	return s.location
}

// ChangeStatus moves the shipment to newStatus through the general
// transition path and raises ShipmentStatusChanged.
//
// Rules enforced, each a distinct failure:
//   - terminal records cannot change (InvalidState)
//   - Cancelled cannot be assigned here; cancellation has a dedicated,
//     manager-gated path (Unauthorized)
//   - newStatus must be a valid status (InvalidInput)
//
// No ordering among non-terminal statuses is enforced: moving backward or
// skipping statuses is allowed. This permissiveness is deliberate.
//
// When location is non-nil it replaces the stored location; otherwise the
// previous location is retained and echoed in the raised event.
func (s *Shipment) ChangeStatus(newStatus Status, location *kernel.Location) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidStateError("shipment "+s.id.String(), s.status.String())
	}
	if newStatus == Cancelled {
		return errs.NewUnauthorizedError("general status change", "set Cancelled on shipment "+s.id.String())
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
		s.location = *location
	}

	s.status = newStatus
	s.raise(ShipmentStatusChanged{ID: s.id, Status: s.status, Location: s.location})
	return nil
}

// Cancel moves the shipment to Cancelled and raises ShipmentCancelled.
// The location is left untouched. Fails with InvalidState when the record
// is already terminal.
func (s *Shipment) Cancel() error {
	if s.status.IsTerminal() {
		return errs.NewInvalidStateError("shipment "+s.id.String(), s.status.String())
	}

	s.status = Cancelled
	s.raise(ShipmentCancelled{ID: s.id})
	return nil
}

// DomainEvents returns the events raised since construction or the last
// ClearDomainEvents call.
func (s *Shipment) DomainEvents() []kernel.DomainEvent {
	return s.events
}

// ClearDomainEvents discards collected events, typically after publishing.
func (s *Shipment) ClearDomainEvents() {
	s.events = nil
}

func (s *Shipment) raise(event kernel.DomainEvent) {
	s.events = append(s.events, event)
}

func (s *Shipment) setID(id kernel.ShipmentID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
