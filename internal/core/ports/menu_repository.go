package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

// MenuRepository defines the read-only persistence contract for menus.
// The order engine never creates or mutates menus; it only resolves them
// for validation and price snapshotting at order creation time.
type MenuRepository interface {
	// Get retrieves a menu by its unique identifier.
	// Returns an object-not-found error if no such menu exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs retrieves the menus matching the given identifiers.
	// Unresolved ids are simply absent from the result; duplicates in ids
	// resolve to a single menu. Callers compare cardinality themselves.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)
}
