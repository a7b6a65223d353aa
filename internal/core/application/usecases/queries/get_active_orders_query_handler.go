package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-progress orders from the database.
// Filters out completed orders to provide active kitchen workload visibility.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-completed orders.
// Results are sorted by creation time so the oldest work surfaces first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_type,
			o.status,
			o.delivery_address,
			o.table_id,
			COALESCE(SUM(i.price_cents * i.quantity), 0) AS total_cents,
			o.created_at
		FROM orders o
		LEFT JOIN order_line_items i ON i.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id, o.order_type, o.status, o.delivery_address, o.table_id, o.created_at
		ORDER BY o.created_at, o.id
	`, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
