package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 2, 1500)}
	cmd, err := commands.NewCreateOrderCommand(id, order.Delivery, items, "Main St", nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Delivery, cmd.OrderType())
	assert.Equal(t, items, cmd.LineItems())
	assert.Equal(t, "Main St", cmd.DeliveryAddress())
	assert.Nil(t, cmd.TableID())
}

func TestNewCreateOrderCommand_EatInCarriesTableID(t *testing.T) {
	tableID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 900)}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.EatIn, items, "", &tableID)
	require.NoError(t, err)
	require.NotNil(t, cmd.TableID())
	assert.Equal(t, tableID, *cmd.TableID())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 900)}
	_, err := commands.NewCreateOrderCommand(invalidID, order.Takeout, items, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingOrderType(t *testing.T) {
	items := []order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 900)}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.TypeUnknown, items, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnconstructedLineItem(t *testing.T) {
	items := []order.LineItem{{}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, items, "", nil)
	require.Error(t, err)
}
