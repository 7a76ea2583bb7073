// Package kernel contains shared value objects and primitives used across
// the domain model: caller identities, validated location strings, shipment
// identifiers, and the domain event contract.
//
// All value objects in this package are immutable and validate themselves at
// construction. Zero values are invalid and fail Validate, which keeps
// improperly initialized objects out of the aggregates.
package kernel
