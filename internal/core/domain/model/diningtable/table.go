// Package diningtable provides the Table entity for eat-in orders. Tables are
// created and destroyed elsewhere; the order engine only reads occupancy when
// validating eat-in orders and clears the table when its last outstanding
// order completes. Keeping the order engine the sole writer of occupancy
// avoids races from dual ownership.
package diningtable

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrTableIsNotConstructed is returned when a Table was not created through
// the RestoreTable constructor.
var ErrTableIsNotConstructed = errors.New("Table must be created via RestoreTable constructor")

// Table is a dining table with an occupancy flag and a guest count.
// An occupied table is one currently assigned to at least one active order.
type Table struct {
	// id uniquely identifies the table
	id kernel.UUID
	// occupied indicates whether guests are currently seated
	occupied bool
	// numberOfGuests is the seated guest count, zero when empty
	numberOfGuests int
	// guard ensures the table was properly constructed
	guard guard.ConstructorGuard
}

// RestoreTable reconstructs a Table from persisted state.
func RestoreTable(id kernel.UUID, occupied bool, numberOfGuests int) (*Table, error) {
	t := &Table{
		occupied: occupied,
		guard:    guard.NewConstructorGuard(),
	}

	if err := t.setID(id); err != nil {
		return nil, err
	}

	if err := t.setNumberOfGuests(numberOfGuests); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Table instance was properly constructed.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// IsOccupied reports whether guests are currently seated at the table.
func (t *Table) IsOccupied() bool {
	return t.occupied
}

// NumberOfGuests returns the seated guest count.
func (t *Table) NumberOfGuests() int {
	return t.numberOfGuests
}

// Clear resets the table to empty: occupied=false, zero guests.
// Called when the last outstanding eat-in order on the table completes.
func (t *Table) Clear() {
	t.occupied = false
	t.numberOfGuests = 0
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidError("numberOfGuests")
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
