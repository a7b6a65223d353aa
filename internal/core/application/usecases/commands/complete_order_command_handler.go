package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler finishes the order lifecycle.
//
// Completion is type sensitive twice over: the final transition itself depends
// on the order type, and eat-in completion may free the dining table. The
// table is cleared only when no other order on it is still in progress, so a
// table shared by several concurrent orders stays occupied until the last of
// them completes. Order update and table clearing happen in one transaction.
type CompleteOrderCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory OrderTableUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete command: loads the order, applies the final
// status transition, and for eat-in orders clears the table when this was the
// last active order on it.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Type() == order.EatIn {
		if err = h.clearTableIfIdle(ctx, uow, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h CompleteOrderCommandHandler) clearTableIfIdle(
	ctx context.Context, uow OrderTableUoW, o *order.Order,
) error {
	tableID := o.TableID()
	if tableID == nil {
		return nil
	}

	active, err := uow.OrderRepository().ExistsActiveByTable(ctx, *tableID, o.ID())
	if err != nil {
		return err
	}
	if active {
		return nil
	}

	tableRepo := uow.TableRepository()
	table, err := tableRepo.Get(ctx, *tableID)
	if err != nil {
		return err
	}

	table.Clear()

	return tableRepo.Update(ctx, table)
}
