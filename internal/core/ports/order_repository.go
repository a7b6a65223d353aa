package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and table assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every persisted order, without filtering or pagination.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// ExistsActiveByTable reports whether any order other than excludeOrderID
	// on the given table has a status other than Completed. Used to decide
	// whether a table can be cleared when an eat-in order completes.
	ExistsActiveByTable(ctx context.Context, tableID kernel.UUID, excludeOrderID kernel.UUID) (bool, error)
}
