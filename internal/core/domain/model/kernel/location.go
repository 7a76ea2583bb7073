package kernel

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

const (
	// LocationMinLen is the minimum length of a location string.
	LocationMinLen = 1
	// LocationMaxLen is the maximum length of a location string.
	LocationMaxLen = 100
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created via the
// NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a validated free-text description of where a shipment
// currently is or is headed. It is an immutable value object whose text is
// always between LocationMinLen and LocationMaxLen characters.
//
// The zero value of Location is invalid and fails Validate - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Warehouse 12, Rotterdam")
//	if err != nil {
//	    // handle validation error
//	}
type Location struct {
	value string
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from the given text.
// The text must be between LocationMinLen and LocationMaxLen characters;
// otherwise a ValueIsInvalidError is returned.
func NewLocation(value string) (Location, error) {
	if len(value) < LocationMinLen || len(value) > LocationMaxLen {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("length %d is not between %d and %d", len(value), LocationMinLen, LocationMaxLen))
	}

	return Location{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the location text.
func (l Location) String() string {
	return l.value
}

// IsEqual reports whether two locations carry the same text.
func (l Location) IsEqual(other Location) bool {
	return l.value == other.value
}

// Validate checks the Location was properly constructed.
// Returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
