package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrServeOrderCommandIsNotConstructed = errors.New(
	"ServeOrderCommand must be created via NewServeOrderCommand constructor",
)

// ServeOrderCommand represents a request to serve an accepted order.
type ServeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewServeOrderCommand creates a command to serve the order with the given id.
func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	cmd := ServeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ServeOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to serve.
func (c ServeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
