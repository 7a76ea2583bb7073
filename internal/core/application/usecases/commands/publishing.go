package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"
)

// eventSource is implemented by aggregates that collect domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// publishAndClear emits the events an aggregate collected during a
// successful operation and clears them. Called only after commit, so
// failed operations never emit notifications.
func publishAndClear(ctx context.Context, publisher ports.EventPublisher, source eventSource) error {
	events := source.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	if err := publisher.Publish(ctx, events...); err != nil {
		return err
	}

	source.ClearDomainEvents()
	return nil
}
