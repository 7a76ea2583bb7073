// Package errs provides standardized error types for the shipment tracker.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure taxonomy of the tracker:
//   - UnauthorizedError: caller lacks the role an operation requires
//   - AlreadyExistsError: duplicate role-membership addition
//   - ObjectNotFoundError: missing membership or never-assigned shipment id
//   - InvalidStateError: mutation attempted against a terminal shipment
//   - ValueIsInvalidError / ValueIsRequiredError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrUnauthorized)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is classification
//
// All failures in the tracker are synchronous: an operation either fully
// succeeds or fails with one of these reasons and leaves no partial state.
package errs
