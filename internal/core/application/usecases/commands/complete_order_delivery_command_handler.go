package commands

import (
	"context"
)

// CompleteOrderDeliveryCommandHandler moves a delivering order to Delivered.
type CompleteOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderDeliveryCommandHandler creates a handler for completing deliveries.
func NewCompleteOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteOrderDeliveryCommandHandler {
	return CompleteOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-delivery command: loads the order, transitions
// it from Delivering to Delivered, and persists the transition.
func (h CompleteOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteOrderDeliveryCommand) error {
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

	if err = o.CompleteDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
