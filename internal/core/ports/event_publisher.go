package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
)

// EventPublisher emits the structured change notifications raised by
// aggregates. Handlers publish only after a successful commit, so a failed
// operation never produces a notification. Delivering notifications to
// external subscribers is the host's concern, not the tracker's.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
