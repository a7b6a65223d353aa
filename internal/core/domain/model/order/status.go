package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct kitchen workflow. Transitions are monotonic: an order
// never moves backwards.
//
// State transitions:
//
//	Waiting ──> Accepted ──> Served ──┬──────────────────────────────> Completed
//	                                  │  (TAKEOUT, EAT_IN)                ^
//	                                  └──> Delivering ──> Delivered ──────┘
//	                                       (DELIVERY only)
//
// The delivery branch is gated by the order type: only Delivery orders pass
// through Delivering and Delivered, and a Delivery order cannot complete
// straight from Served. All type gating lives in the transition methods below
// so the transition table stays in one unit-testable place.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Waiting is the initial status of every newly created order.
	Waiting

	// Accepted indicates the kitchen has taken the order in.
	// For delivery orders, acceptance also triggers a rider dispatch request.
	Accepted

	// Served indicates the prepared order has been handed over: to the
	// counter for takeout, to the table for dine-in, or to the dispatch
	// shelf for delivery.
	Served

	// Delivering indicates a delivery order is on its way to the customer.
	Delivering

	// Delivered indicates a delivery order has reached the customer.
	Delivered

	// Completed indicates the order is finished.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Waiting:       "WAITING",
		Accepted:      "ACCEPTED",
		Served:        "SERVED",
		Delivering:    "DELIVERING",
		Delivered:     "DELIVERED",
		Completed:     "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Waiting, Accepted, Served, Delivering, Delivered,
// Completed. StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "WAITING" or "DELIVERING".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Waiting -> Accepted
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) if the order is not waiting
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}
	return Accepted, nil
}

// Serve transitions the status to Served.
//
// Valid transitions:
//   - Accepted -> Served
//
// Returns:
//   - (Served, nil) on valid transition
//   - (0, error) if the order is not accepted
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to serve", s),
		)
	}
	return Served, nil
}

// StartDelivery transitions the status to Delivering.
//
// Valid transitions:
//   - Served -> Delivering, for Delivery orders only
//
// The order type is checked before the status, so a non-delivery order in any
// status fails on its type first.
//
// Returns:
//   - (Delivering, nil) on valid transition
//   - (0, error) if the order is not a delivery order or not served
func (s Status) StartDelivery(t Type) (Status, error) {
	if t != Delivery {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order type",
			fmt.Errorf("%s order cannot start delivery", t),
		)
	}
	if s != Served {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to start delivery", s),
		)
	}
	return Delivering, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - Delivering -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the order is not delivering
func (s Status) CompleteDelivery() (Status, error) {
	if s != Delivering {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to complete delivery", s),
		)
	}
	return Delivered, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Delivered -> Completed, for Delivery orders
//   - Served -> Completed, for Takeout and EatIn orders
//
// Completed is a final state with no further transitions possible.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the order has not reached the completable status for its type
func (s Status) Complete(t Type) (Status, error) {
	if t == Delivery {
		if s != Delivered {
			return 0, errs.NewInvalidStateErrorWithCause(
				"order status",
				fmt.Errorf("%s is not a valid status to complete a delivery order", s),
			)
		}
		return Completed, nil
	}

	if s != Served {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to complete a %s order", s, t),
		)
	}
	return Completed, nil
}
