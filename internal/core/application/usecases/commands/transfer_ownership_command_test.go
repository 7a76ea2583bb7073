package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferOwnershipCommand_ValidInput(t *testing.T) {
	caller := kernel.NewRandomIdentity()
	candidate := kernel.NewRandomIdentity()

	cmd, err := commands.NewTransferOwnershipCommand(caller, candidate)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(caller))
	assert.True(t, cmd.Candidate().IsEqual(candidate))
	assert.NoError(t, cmd.Validate())
}

func TestNewTransferOwnershipCommand_InvalidCaller(t *testing.T) {
	_, err := commands.NewTransferOwnershipCommand(kernel.Identity{}, kernel.NewRandomIdentity())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIdentityIsNotConstructed)
}

func TestNewTransferOwnershipCommand_InvalidCandidate(t *testing.T) {
	_, err := commands.NewTransferOwnershipCommand(kernel.NewRandomIdentity(), kernel.Identity{})
	require.Error(t, err)
}

func TestTransferOwnershipCommand_NotConstructed(t *testing.T) {
	var cmd commands.TransferOwnershipCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrTransferOwnershipCommandIsNotConstructed, err)
}
