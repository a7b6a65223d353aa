package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create line item with valid input", func(t *testing.T) {
		menuID := kernel.NewUUID()
		price := kernel.NewMoney(1050)

		item, err := order.NewLineItem(menuID, 3, price)

		require.NoError(t, err)
		assert.True(t, item.MenuID().IsEqual(menuID))
		assert.Equal(t, int64(3), item.Quantity())
		assert.True(t, item.Price().IsEqual(price))
		assert.NoError(t, item.Validate())
	})

	t.Run("should accept negative quantity", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), -2, kernel.NewMoney(500))

		require.NoError(t, err)
		assert.Equal(t, int64(-2), item.Quantity())
	})

	t.Run("should reject zero value menu id", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, 1, kernel.NewMoney(500))

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject zero value price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.Money{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestLineItem_Total(t *testing.T) {
	t.Run("should multiply price by quantity", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), 3, kernel.NewMoney(1050))

		require.NoError(t, err)
		assert.True(t, item.Total().IsEqual(kernel.NewMoney(3150)))
	})

	t.Run("should yield negative total for negative quantity", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), -2, kernel.NewMoney(500))

		require.NoError(t, err)
		assert.True(t, item.Total().IsEqual(kernel.NewMoney(-1000)))
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail for line item not created via constructor", func(t *testing.T) {
		var item order.LineItem

		err := item.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}
