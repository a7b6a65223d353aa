package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrStartOrderDeliveryCommandIsNotConstructed = errors.New(
	"StartOrderDeliveryCommand must be created via NewStartOrderDeliveryCommand constructor",
)

// StartOrderDeliveryCommand represents a request to start delivering a served
// delivery order.
type StartOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderDeliveryCommand creates a command to start delivery for the order with the given id.
func NewStartOrderDeliveryCommand(orderID kernel.UUID) (StartOrderDeliveryCommand, error) {
	cmd := StartOrderDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return StartOrderDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery starts.
func (c StartOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
