package services

import (
	"fmt"

	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

// OrderValidator is a domain service that checks requested line items against
// the menu catalog at order creation time and produces the priced line items
// that the order will carry.
//
// The checks run in a fixed sequence and fail fast:
//  1. Every requested menu must resolve: the resolved menus must cover the
//     requested line items one for one (duplicate menu references therefore
//     fail, since they resolve to fewer distinct menus than items requested)
//  2. Line item quantities must be non-negative unless the order is eat-in;
//     dine-in orders may carry negative quantities (tab adjustments)
//  3. Every referenced menu must currently be displayed
//  4. Every line item's price must exactly equal the menu's current price
//
// Rules 1, 2 and 4 are invalid-argument failures; rule 3 is an invalid-state
// failure since the request is well formed but the catalog forbids it.
//
// Example usage:
//
//	validator := services.NewOrderValidator()
//	priced, err := validator.ValidateForCreation(order.Takeout, items, menus)
//	if err != nil {
//	    // Reject the creation request
//	    return err
//	}
//	// priced carries each item with the menu's current price snapshotted
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// ValidateForCreation validates the requested line items against the resolved
// menus and returns the priced line items for the new order. Each returned
// item carries the menu's current price as its immutable snapshot.
//
// Parameters:
//   - orderType: The requested order type (decides the quantity sign rule)
//   - lineItems: The requested line items with caller-supplied price snapshots
//   - menus: The menus resolved for the requested menu ids
//
// Returns:
//   - []order.LineItem: Priced line items, in request order
//   - error: The first failed check, classified as described above
func (v OrderValidator) ValidateForCreation(
	orderType order.Type,
	lineItems []order.LineItem,
	menus []*menu.Menu,
) ([]order.LineItem, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	if len(lineItems) == 0 {
		return nil, errs.NewValueIsRequiredError("orderLineItems")
	}

	if len(menus) != len(lineItems) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderLineItems",
			fmt.Errorf("%d line items requested but %d menus resolved", len(lineItems), len(menus)),
		)
	}

	byID := make(map[string]*menu.Menu, len(menus))
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byID[m.ID().String()] = m
	}

	// Eat-in orders are exempt from the sign rule: negative quantities record
	// tab adjustments against the table.
	if orderType != order.EatIn {
		for _, item := range lineItems {
			if item.Quantity() < 0 {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"quantity",
					fmt.Errorf("%d is negative for a %s order", item.Quantity(), orderType),
				)
			}
		}
	}

	priced := make([]order.LineItem, 0, len(lineItems))
	for _, item := range lineItems {
		m, ok := byID[item.MenuID().String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu", item.MenuID().String())
		}

		if !m.IsDisplayed() {
			return nil, errs.NewInvalidStateErrorWithCause(
				"menu",
				fmt.Errorf("menu %s is not displayed", m.ID()),
			)
		}

		if !item.Price().IsEqual(m.Price()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"price",
				fmt.Errorf("line item price %s does not match menu price %s", item.Price(), m.Price()),
			)
		}

		pricedItem, err := order.NewLineItem(item.MenuID(), item.Quantity(), m.Price())
		if err != nil {
			return nil, err
		}
		priced = append(priced, pricedItem)
	}

	return priced, nil
}
