// Package shipment contains the Shipment aggregate: the persistent record
// of a tracked consignment, keyed by its integer id, carrying a lifecycle
// status and a validated free-text location.
//
// The lifecycle forms a total order of reachability, not a strict
// sequence: ShipmentAdded, Shipped, Dispatched, InTransit, Arrived,
// OutForDelivery, Delivered, with Cancelled reachable from any
// non-terminal status through the dedicated cancel path only. The general
// status change deliberately does not enforce adjacency - a non-terminal
// record may move to any non-Cancelled status in one call, forward,
// backward, or skipping steps. Only two rules are hard: terminal records
// (Delivered, Cancelled) never change again, and Cancelled is assignable
// only through Cancel.
//
// Records are never deleted; once created a shipment exists permanently
// and is mutated in place until it reaches a terminal status.
package shipment
