// Package menu provides the Menu entity as the order engine sees it: an
// identifier, a current price and a display flag. Menu lifecycle management
// (catalog CRUD, pricing changes) belongs to another part of the system; this
// package is read-only reference data for order validation and pricing.
package menu

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when a Menu was not created through
// the RestoreMenu constructor.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via RestoreMenu constructor")

// Menu is a priced catalog entry. Hidden menus (displayed=false) cannot be
// ordered; the current price is the reference against which line item price
// snapshots are checked at order creation time.
type Menu struct {
	// id uniquely identifies the menu
	id kernel.UUID
	// price is the menu's current price
	price kernel.Money
	// displayed indicates whether the menu is visible and orderable
	displayed bool
	// guard ensures the menu was properly constructed
	guard guard.ConstructorGuard
}

// RestoreMenu reconstructs a Menu from persisted state. The order engine never
// creates menus, so this restoration constructor is the only way to obtain one.
func RestoreMenu(id kernel.UUID, price kernel.Money, displayed bool) (*Menu, error) {
	m := &Menu{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Price returns the menu's current price.
func (m *Menu) Price() kernel.Money {
	return m.price
}

// IsDisplayed reports whether the menu is visible and orderable.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
