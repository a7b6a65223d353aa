package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// AcceptOrderCommandHandler moves a waiting order to Accepted.
// For delivery orders it requests a rider dispatch carrying the order id, the
// total order amount and the delivery address.
//
// Dispatch ordering: the status transition is applied in memory, the rider
// request is made, and only then is the new status persisted and committed.
// A failed dispatch therefore rolls the whole operation back and the order
// stays in Waiting.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, riderClient)
//	cmd, _ := NewAcceptOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept order: %w", err)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	riderClient ports.RiderClient
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires an OrderUoWFactory for transactional persistence and a RiderClient
// for delivery dispatch.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, riderClient ports.RiderClient) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:  uowFactory,
		riderClient: riderClient,
	}
}

// Handle processes the accept command: loads the order, transitions it from
// Waiting to Accepted, dispatches a rider request for delivery orders, and
// persists the transition.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = o.Accept(); err != nil {
		return err
	}

	if o.Type() == order.Delivery {
		if err = h.riderClient.RequestDelivery(ctx, o.ID(), o.TotalAmount(), o.DeliveryAddress()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
