package ports

import (
	"context"

	"kitchen/internal/core/domain/model/diningtable"
	"kitchen/internal/core/domain/model/kernel"
)

// TableRepository defines the persistence contract for dining tables.
// Table lifecycle (creation, seating) is managed elsewhere; the order engine
// reads occupancy during eat-in order creation and writes it back only when
// clearing a table after its last outstanding order completes.
type TableRepository interface {
	// Get retrieves a table by its unique identifier.
	// Returns an object-not-found error if no such table exists.
	Get(ctx context.Context, id kernel.UUID) (*diningtable.Table, error)

	// Update persists changes to an existing table.
	Update(ctx context.Context, table *diningtable.Table) error
}
