// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, role
// gating against the AccessControl aggregate, transaction management,
// persistence, and post-commit notification publishing.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccessRepoFactory provides access to the access-control repository
	// within a transaction.
	AccessRepoFactory interface {
		AccessRepository() ports.AccessRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository
	// within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// AccessUoW manages transactions for role-administration operations,
	// which only touch the AccessControl aggregate.
	AccessUoW interface {
		TxManager
		AccessRepoFactory
	}

	// AccessUoWFactory creates new access unit of work instances.
	AccessUoWFactory interface {
		Create() AccessUoW
	}

	// UoW manages transactions for shipment operations, which consult the
	// AccessControl aggregate for role gating and mutate shipment records
	// within the same transaction.
	UoW interface {
		TxManager
		AccessRepoFactory
		ShipmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for shipment
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
