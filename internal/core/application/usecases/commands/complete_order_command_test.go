package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCompleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
}
