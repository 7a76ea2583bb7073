package errs_test

import (
	"errors"
	"testing"

	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("alice", "add manager")

		assert.Equal(t, "alice", err.Identity)
		assert.Equal(t, "add manager", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "unauthorized: alice may not perform add manager", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("caller holds no role")
		err := errs.NewUnauthorizedErrorWithCause("bob", "transfer ownership", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"unauthorized: bob may not perform transfer ownership (cause: caller holds no role)",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := errs.NewAlreadyExistsError("manager", "alice")

		assert.Equal(t, "manager", err.ParamName)
		assert.Equal(t, "alice", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "already exists: alice", err.Error())
		assert.Equal(t, errs.ErrAlreadyExists, err.Unwrap())
	})

	t.Run("NewAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate row")
		err := errs.NewAlreadyExistsErrorWithCause("employee", "bob", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"already exists: param is: employee, ID is: bob (cause: duplicate row)",
			err.Error())
		assert.Equal(t, errs.ErrAlreadyExists, err.Unwrap())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	// IDs are not always strings; integer ids must render as numbers.
	t.Run("IntegerID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("ownership", int64(1))
		assert.Equal(t, "object not found: 1", err.Error())

		cause := errors.New("row missing")
		withCause := errs.NewObjectNotFoundErrorWithCause("ownership", int64(1), cause)
		assert.Equal(t,
			"object not found: param is: ownership, ID is: 1 (cause: row missing)",
			withCause.Error())

		exists := errs.NewAlreadyExistsError("shipment", int64(7))
		assert.Equal(t, "already exists: 7", exists.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("shipment 7", "Delivered")

		assert.Equal(t, "shipment 7", err.ParamName)
		assert.Equal(t, "Delivered", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: shipment 7 is in state Delivered", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal states are immutable")
		err := errs.NewInvalidStateErrorWithCause("shipment 7", "Cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: shipment 7 is in state Cancelled (cause: terminal states are immutable)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("location")

		assert.Equal(t, "location", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: location", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("location", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: location (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("identity")

		assert.Equal(t, "identity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: identity", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("identity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: identity (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "already exists", errs.ErrAlreadyExists.Error())
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewUnauthorizedError("alice", "add manager"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewAlreadyExistsError("manager", "alice"), errs.ErrAlreadyExists)
		require.ErrorIs(t, errs.NewObjectNotFoundError("shipmentId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewInvalidStateError("shipment 7", "Delivered"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewValueIsInvalidError("location"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("identity"), errs.ErrValueIsRequired)
	})
}
