package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderDeliveryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCompleteOrderDeliveryCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCompleteOrderDeliveryCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteOrderDeliveryCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteOrderDeliveryCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderDeliveryCommandIsNotConstructed)
}
