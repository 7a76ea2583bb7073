package kernel

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// ShipmentID is the positive integer identifier of a shipment record.
// Id 0 is reserved as the "does not exist" sentinel and is never assigned;
// ids are allocated by a monotonically increasing counter starting at 1 and
// are never reused.
type ShipmentID int64

// Validate checks the id is a valid assigned identifier (strictly positive).
func (id ShipmentID) Validate() error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}

// String returns the decimal representation of the id.
func (id ShipmentID) String() string {
	return fmt.Sprintf("%d", id)
}
