package kernel

import (
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not created
// through one of the constructor functions. It is returned when validating
// a zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError(
	"identity must be created via NewIdentity or NewRandomIdentity")

// Identity is an opaque, comparable principal token identifying a caller.
// The hosting environment authenticates callers and hands the tracker an
// already-verified token; the tracker never inspects its contents beyond
// equality comparison.
//
// The zero value of Identity is invalid and must be constructed via
// NewIdentity or NewRandomIdentity.
//
// Example:
//
//	admin, err := kernel.NewIdentity("acct:0x51a9")
//	if err != nil {
//	    // handle validation error
//	}
type Identity struct {
	token string
}

// NewIdentity creates an Identity from an externally supplied principal
// token. The token must be non-empty.
func NewIdentity(token string) (Identity, error) {
	if token == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity token")
	}
	return Identity{token: token}, nil
}

// NewRandomIdentity generates an Identity backed by a fresh random UUID.
// Intended for tests and local tooling where no external authentication
// environment supplies tokens.
func NewRandomIdentity() Identity {
	return Identity{token: uuid.NewString()}
}

// String returns the raw principal token.
func (i Identity) String() string {
	return i.token
}

// IsEqual reports whether two identities denote the same principal.
func (i Identity) IsEqual(other Identity) bool {
	return i.token == other.token
}

// Validate checks the Identity was properly constructed.
// Returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.token == "" {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
