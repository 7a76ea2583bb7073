package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/access"
)

// AccessRepository defines the persistence contract for the singleton
// AccessControl aggregate. The tracker has exactly one authority
// configuration, so the repository exposes no id-based lookup.
type AccessRepository interface {
	// Get retrieves the AccessControl aggregate.
	// Returns ObjectNotFound when the aggregate was never bootstrapped.
	Get(ctx context.Context) (*access.AccessControl, error)

	// Save persists the full aggregate state: administrator, role
	// memberships, and the pending-transfer slot.
	Save(ctx context.Context, aggregate *access.AccessControl) error
}
