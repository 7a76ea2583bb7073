package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelShipmentCommand_ValidInput(t *testing.T) {
	caller := kernel.NewRandomIdentity()

	cmd, err := commands.NewCancelShipmentCommand(caller, 9)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(caller))
	assert.Equal(t, kernel.ShipmentID(9), cmd.ShipmentID())
}

func TestNewCancelShipmentCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCancelShipmentCommand(kernel.Identity{}, 9)
	require.Error(t, err)

	// A never-assigned id reads as a missing record, not invalid input.
	_, err = commands.NewCancelShipmentCommand(kernel.NewRandomIdentity(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelShipmentCommand_NotConstructed(t *testing.T) {
	var cmd commands.CancelShipmentCommand
	assert.Equal(t, commands.ErrCancelShipmentCommandIsNotConstructed, cmd.Validate())
}
