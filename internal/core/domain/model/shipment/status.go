package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment record.
//
// Reachability order (not an enforced sequence):
//
//	Added ──> Shipped ──> Dispatched ──> InTransit ──> Arrived ──> OutForDelivery ──> Delivered
//	  │           │            │              │            │               │
//	  └───────────┴────────────┴──────┬───────┴────────────┘               │
//	                                  v                                    │
//	                              Cancelled <──────────────────────────────┘
//	                        (dedicated cancel path only)
//
// Delivered and Cancelled are terminal: a record that reached either never
// changes again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Added is the initial status assigned at creation.
	Added

	// Shipped indicates the consignment left the sender.
	Shipped

	// Dispatched indicates the consignment was handed to a carrier.
	Dispatched

	// InTransit indicates the consignment is moving between facilities.
	InTransit

	// Arrived indicates the consignment reached the destination facility.
	Arrived

	// OutForDelivery indicates the consignment is on its final leg.
	OutForDelivery

	// Delivered indicates the consignment reached the recipient.
	// This is a terminal status.
	Delivered

	// Cancelled indicates the shipment was cancelled.
	// This is a terminal status, reachable only through Shipment.Cancel.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Added:          "ShipmentAdded",
		Shipped:        "Shipped",
		Dispatched:     "Dispatched",
		InTransit:      "InTransit",
		Arrived:        "Arrived",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	statuses := getStatusStrings()
	delete(statuses, Unknown)
	return statuses
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status forbids any further mutation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value;
// invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation, as used
// on the wire and in persistence. Unknown is not parseable.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}
