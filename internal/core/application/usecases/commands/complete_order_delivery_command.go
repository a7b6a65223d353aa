package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrCompleteOrderDeliveryCommandIsNotConstructed = errors.New(
	"CompleteOrderDeliveryCommand must be created via NewCompleteOrderDeliveryCommand constructor",
)

// CompleteOrderDeliveryCommand represents a request to mark a delivering
// order as delivered.
type CompleteOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderDeliveryCommand creates a command to complete delivery for the order with the given id.
func NewCompleteOrderDeliveryCommand(orderID kernel.UUID) (CompleteOrderDeliveryCommand, error) {
	cmd := CompleteOrderDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CompleteOrderDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CompleteOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
