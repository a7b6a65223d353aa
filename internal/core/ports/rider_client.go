package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
)

// RiderClient is the outbound contract for the external rider-assignment
// system. Accepting a delivery order dispatches a request carrying the order
// id, the total order amount and the delivery address.
//
// The call is fire-and-forget from the engine's point of view: the rider
// system's own retry and failure policy is out of scope, and the engine never
// retries a failed dispatch.
type RiderClient interface {
	// RequestDelivery asks the rider system to assign a courier for the order.
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amount kernel.Money, deliveryAddress string) error
}
