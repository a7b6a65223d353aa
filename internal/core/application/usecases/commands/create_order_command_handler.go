package commands

import (
	"context"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It resolves the requested menus, validates the request against the catalog
// and, for eat-in orders, against table occupancy, then persists the new
// order in Waiting status with menu prices snapshotted into its line items.
//
// The validation sequence fails fast and touches no state until every rule
// has passed: type and line item structure, menu resolution, quantity sign
// (dine-in orders may carry negative quantities), menu display state, exact
// price equality, delivery address, table occupancy.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), order.Delivery, items, "Seoul", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted and waiting for acceptance
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across orders, menus and tables.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lineItems := cmd.LineItems()
	menuIDs := make([]kernel.UUID, 0, len(lineItems))
	for _, item := range lineItems {
		menuIDs = append(menuIDs, item.MenuID())
	}

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, menuIDs)
	if err != nil {
		return err
	}

	pricedItems, err := services.NewOrderValidator().ValidateForCreation(cmd.OrderType(), lineItems, menus)
	if err != nil {
		return err
	}

	if cmd.OrderType() == order.EatIn {
		if err = h.checkTableIsOccupied(ctx, uow, cmd.TableID()); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderType(),
		pricedItems,
		cmd.DeliveryAddress(),
		cmd.TableID(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkTableIsOccupied resolves the table reference and verifies guests are
// seated. A missing reference resolves to a not-found failure, an empty table
// to an invalid-state failure.
func (h CreateOrderCommandHandler) checkTableIsOccupied(ctx context.Context, uow UoW, tableID *kernel.UUID) error {
	if tableID == nil {
		return errs.NewObjectNotFoundError("orderTable", "")
	}

	table, err := uow.TableRepository().Get(ctx, *tableID)
	if err != nil {
		return err
	}

	if !table.IsOccupied() {
		return errs.NewInvalidStateErrorWithCause(
			"orderTable",
			fmt.Errorf("table %s is not occupied", table.ID()),
		)
	}

	return nil
}
