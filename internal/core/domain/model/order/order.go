package order

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that manages
// the order lifecycle from creation through acceptance, serving and completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid type
//   - Has at least one line item
//   - Carries a non-empty delivery address if and only if it is a Delivery order
//   - References a table if and only if it is an EatIn order
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderType is fixed at creation: Takeout, Delivery or EatIn
	orderType Type

	// status represents the current state in the order lifecycle
	status Status

	// lineItems is the ordered sequence of menu selections, never empty
	lineItems []LineItem

	// deliveryAddress is the destination for Delivery orders, empty otherwise
	deliveryAddress string

	// tableID references the dining table for EatIn orders, nil otherwise
	tableID *kernel.UUID

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Waiting status with validation. This is the only way
// to create a fresh order, ensuring all structural invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - orderType: Takeout, Delivery or EatIn
//   - lineItems: Non-empty sequence of constructed line items
//   - deliveryAddress: Required non-empty for Delivery orders, must be empty otherwise
//   - tableID: Required for EatIn orders, must be nil otherwise
//
// Returns:
//   - *Order: The created order in Waiting status if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Line item pricing rules (menu existence, display state, price equality) are
// enforced by the order validation domain service before construction; this
// constructor owns only the structural invariants of the aggregate.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	lineItems []LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        Waiting,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	if err := o.setDeliveryAddress(deliveryAddress); err != nil {
		return nil, err
	}

	if err := o.setTableID(tableID); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any valid status and an explicit creation timestamp. All structural
// invariants are re-validated so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems []LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setStatus(status),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	if err := o.setDeliveryAddress(deliveryAddress); err != nil {
		return nil, err
	}

	if err := o.setTableID(tableID); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order's type. Immutable after creation.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryAddress returns the delivery destination for Delivery orders.
// Empty for other order types.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TableID returns the referenced dining table's ID for EatIn orders.
// Returns nil for other order types.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalAmount returns the sum of price multiplied by quantity across all line
// items. Dine-in adjustment items with negative quantities reduce the total.
func (o *Order) TotalAmount() kernel.Money {
	total := kernel.NewMoney(0)
	for _, item := range o.lineItems {
		total = total.Add(item.Total())
	}
	return total
}

// Accept moves the order from Waiting to Accepted.
//
// Returns an invalid-state error if the order is not waiting. For Delivery
// orders the caller is responsible for requesting a rider dispatch; the
// aggregate only performs the transition.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Serve moves the order from Accepted to Served.
//
// Returns an invalid-state error if the order is not accepted.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartDelivery moves a Delivery order from Served to Delivering.
//
// Returns an invalid-state error if the order is not a delivery order or not served.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery(o.orderType)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CompleteDelivery moves a Delivery order from Delivering to Delivered.
//
// Returns an invalid-state error if the order is not delivering.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete moves the order to Completed: from Delivered for Delivery orders,
// from Served for Takeout and EatIn orders. Completed is final.
//
// For EatIn orders the caller decides whether the referenced table can be
// cleared; the aggregate only performs the transition.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.orderType)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setType validates and sets the order's type.
// This is a private method used only during construction.
func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

// setStatus validates and sets the order's status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setLineItems validates and sets the order's line items.
// The sequence must be non-empty and every item properly constructed.
func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("orderLineItems")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

// setDeliveryAddress enforces the address invariant: required and non-empty
// for Delivery orders, absent otherwise. Runs after setType.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if o.orderType == Delivery && deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if o.orderType != Delivery && deliveryAddress != "" {
		return errs.NewValueIsInvalidError("deliveryAddress is only allowed for delivery orders")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setTableID enforces the table invariant: required for EatIn orders, absent
// otherwise. Runs after setType.
func (o *Order) setTableID(tableID *kernel.UUID) error {
	if o.orderType == EatIn {
		if tableID == nil {
			return errs.NewValueIsRequiredError("orderTableId")
		}
		if err := tableID.Validate(); err != nil {
			return err
		}
		id := *tableID
		o.tableID = &id
		return nil
	}
	if tableID != nil {
		return errs.NewValueIsInvalidError("orderTableId is only allowed for eat-in orders")
	}
	return nil
}
