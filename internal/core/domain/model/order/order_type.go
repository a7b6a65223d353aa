package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type represents the kind of order placed by a customer.
// The type is required at creation time and immutable afterwards: it decides
// which validation rules apply to line items, whether a delivery address or a
// table reference is required, and which path the status state machine takes.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	// This value (0) helps catch requests that never set a type.
	TypeUnknown Type = iota

	// Takeout is an order picked up at the counter.
	Takeout

	// Delivery is an order dispatched to a courier after acceptance.
	// Delivery orders require a non-empty delivery address.
	Delivery

	// EatIn is a dine-in order bound to an occupied table.
	EatIn
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "UNKNOWN",
		Takeout:     "TAKEOUT",
		Delivery:    "DELIVERY",
		EatIn:       "EAT_IN",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		Takeout:  "TAKEOUT",
		Delivery: "DELIVERY",
		EatIn:    "EAT_IN",
	}
}

// TypeFromString parses an order type from its wire representation
// ("TAKEOUT", "DELIVERY", "EAT_IN"). An empty string is reported as a missing
// value; anything else unrecognized is invalid.
func TypeFromString(s string) (Type, error) {
	if s == "" {
		return TypeUnknown, errs.NewValueIsRequiredError("order type")
	}
	for t, str := range getValidTypeStrings() {
		if s == str {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate checks if the Type value is valid.
//
// Valid types are: Takeout, Delivery, EatIn. TypeUnknown (0) is reported as a
// missing required value since it is the zero value of a request that never
// set a type; any other value is invalid.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsRequiredError("order type")
	}
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire name of the type ("TAKEOUT", "DELIVERY", "EAT_IN").
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
