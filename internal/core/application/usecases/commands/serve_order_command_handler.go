package commands

import (
	"context"
)

// ServeOrderCommandHandler moves an accepted order to Served.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for serving orders.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the serve command: loads the order, transitions it from
// Accepted to Served, and persists the transition.
func (h ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) error {
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

	if err = o.Serve(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
