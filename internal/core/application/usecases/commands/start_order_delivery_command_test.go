package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartOrderDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartOrderDeliveryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewStartOrderDeliveryCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewStartOrderDeliveryCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStartOrderDeliveryCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.StartOrderDeliveryCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrStartOrderDeliveryCommandIsNotConstructed)
}
