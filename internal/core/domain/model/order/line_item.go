package order

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one menu selection within an order: a menu reference, a quantity
// and a price snapshot taken at order time. The snapshot makes the order's
// amounts immune to later menu price changes.
//
// A line item is owned exclusively by its Order and never shared. Quantity sign
// rules depend on the order type, so they are enforced at the point where the
// type is known, not here: the constructor accepts any quantity.
type LineItem struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item referencing a menu, with the price recorded
// at order time. The menu id and price must be properly constructed values.
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuID(menuID),
		item.setPrice(price),
	); err != nil {
		return LineItem{}, err
	}

	item.quantity = quantity
	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuID returns the referenced menu's identifier.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns the ordered quantity. May be negative for dine-in orders.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// Price returns the menu price snapshot taken at order time.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Total returns price multiplied by quantity.
func (li LineItem) Total() kernel.Money {
	return li.price.MultiplyQuantity(li.quantity)
}

func (li *LineItem) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	li.menuID = menuID
	return nil
}

func (li *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.price = price
	return nil
}
