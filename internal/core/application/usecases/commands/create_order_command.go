package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order.
// It carries the order type, the requested line items with their price
// snapshots, and the delivery address or table reference as applicable.
//
// Example:
//
//	item, _ := order.NewLineItem(menuID, 2, kernel.NewMoney(1000))
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Takeout, []order.LineItem{item}, "", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	lineItems       []order.LineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order id is valid, the type is one of the three known
// values and the line items are present and properly constructed. Menu
// resolution, pricing and table occupancy are checked by the handler, where
// the stores are available.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	lineItems []order.LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setLineItems(lineItems),
		cmd.setTableID(tableID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier generated for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// LineItems returns the requested line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

// DeliveryAddress returns the requested delivery destination, empty when absent.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// TableID returns the requested dining table reference, nil when absent.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.lineItems = make([]order.LineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	id := *tableID
	c.tableID = &id
	return nil
}
