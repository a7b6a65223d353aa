package commands

import (
	"context"
)

// StartOrderDeliveryCommandHandler moves a served delivery order to Delivering.
// Orders of any other type fail with an invalid-state error regardless of status.
type StartOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-delivery command: loads the order, transitions it
// from Served to Delivering, and persists the transition.
func (h StartOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd StartOrderDeliveryCommand) error {
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

	if err = o.StartDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
