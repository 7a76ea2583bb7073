package kernel

// DomainEvent is a structured change notification raised by an aggregate
// when one of its state mutations succeeds. Events are collected on the
// aggregate and published after the surrounding transaction commits;
// dispatching them to external subscribers is outside the tracker.
type DomainEvent interface {
	// EventName returns the stable name of the notification kind,
	// e.g. "ownership-changed" or "shipment-created".
	EventName() string
}
