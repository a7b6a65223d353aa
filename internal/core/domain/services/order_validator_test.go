package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

func mustMenu(t *testing.T, id kernel.UUID, cents int64, displayed bool) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(id, kernel.NewMoney(cents), displayed)
	require.NoError(t, err)
	return m
}

func mustLineItem(t *testing.T, menuID kernel.UUID, quantity int64, cents int64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(menuID, quantity, kernel.NewMoney(cents))
	require.NoError(t, err)
	return item
}

func TestOrderValidator_ValidateForCreation(t *testing.T) {
	validator := services.NewOrderValidator()

	t.Run("should price line items from the menu catalog", func(t *testing.T) {
		firstID := kernel.NewUUID()
		secondID := kernel.NewUUID()
		items := []order.LineItem{
			mustLineItem(t, firstID, 2, 1200),
			mustLineItem(t, secondID, 1, 500),
		}
		menus := []*menu.Menu{
			mustMenu(t, firstID, 1200, true),
			mustMenu(t, secondID, 500, true),
		}

		priced, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.NoError(t, err)
		require.Len(t, priced, 2)
		assert.True(t, priced[0].MenuID().IsEqual(firstID))
		assert.Equal(t, int64(2), priced[0].Quantity())
		assert.True(t, priced[0].Price().IsEqual(kernel.NewMoney(1200)))
		assert.True(t, priced[1].Price().IsEqual(kernel.NewMoney(500)))
	})

	t.Run("should reject unknown order type", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, 1, 500)}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

		_, err := validator.ValidateForCreation(order.TypeUnknown, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		_, err := validator.ValidateForCreation(order.Takeout, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderLineItems")
	})

	t.Run("should reject when resolved menus do not cover the request", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{
			mustLineItem(t, menuID, 1, 500),
			mustLineItem(t, kernel.NewUUID(), 1, 900),
		}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject duplicate menu references", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{
			mustLineItem(t, menuID, 1, 500),
			mustLineItem(t, menuID, 2, 500),
		}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative quantity for takeout and delivery orders", func(t *testing.T) {
		for _, orderType := range []order.Type{order.Takeout, order.Delivery} {
			menuID := kernel.NewUUID()
			items := []order.LineItem{mustLineItem(t, menuID, -1, 500)}
			menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

			_, err := validator.ValidateForCreation(orderType, items, menus)

			require.Error(t, err, orderType.String())
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should allow negative quantity for eat-in orders", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, -1, 500)}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

		priced, err := validator.ValidateForCreation(order.EatIn, items, menus)

		require.NoError(t, err)
		require.Len(t, priced, 1)
		assert.Equal(t, int64(-1), priced[0].Quantity())
	})

	t.Run("should report unresolved menu as not found", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, 1, 500)}
		menus := []*menu.Menu{mustMenu(t, kernel.NewUUID(), 500, true)}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject hidden menu as invalid state", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, 1, 500)}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, false)}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject price snapshot that differs from menu price", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, 1, 400)}
		menus := []*menu.Menu{mustMenu(t, menuID, 500, true)}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should reject unconstructed menu", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, menuID, 1, 500)}
		menus := []*menu.Menu{{}}

		_, err := validator.ValidateForCreation(order.Takeout, items, menus)

		require.Error(t, err)
		assert.ErrorIs(t, err, menu.ErrMenuIsNotConstructed)
	})
}
