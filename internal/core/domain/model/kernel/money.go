package kernel

import (
	"fmt"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents an exact monetary amount stored as a signed number of cents.
// Storing cents as an integer gives exact decimal equality, which the ordering
// rules rely on when comparing a line item's price snapshot against the menu
// price. Amounts may be negative: dine-in adjustment line items with negative
// quantities produce negative line totals.
//
// Money is an immutable value object. The zero value is invalid and will fail
// validation - use NewMoney to create instances.
//
// Example:
//
//	price := kernel.NewMoney(1050) // 10.50
//	total := price.MultiplyQuantity(3)
//	fmt.Println(total) // Output: 31.50
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money amount from a number of cents.
// Any signed value is accepted; sign carries through arithmetic.
func NewMoney(cents int64) Money {
	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using the constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount as a signed number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual reports whether two amounts are exactly equal.
// Equality is exact cent-for-cent comparison, never approximate.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return NewMoney(m.cents + other.cents)
}

// MultiplyQuantity returns the amount multiplied by an item quantity.
// Negative quantities yield negative totals.
func (m Money) MultiplyQuantity(quantity int64) Money {
	return NewMoney(m.cents * quantity)
}

// String returns the decimal representation of the amount, e.g. "10.50" or "-3.25".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
