package queries

import (
	"context"
	"database/sql"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
// Aggregates each order's total amount over its line items in SQL so the
// projection stays a single round trip.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve every order.
// Results are sorted by creation time so the ledger reads chronologically.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
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
		GROUP BY o.id, o.order_type, o.status, o.delivery_address, o.table_id, o.created_at
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows maps order projection rows to responses. Expects the column
// order id, order_type, status, delivery_address, table_id, total_cents,
// created_at.
func scanOrderRows(rows *sql.Rows) ([]OrderQueryResponse, error) {
	orders := make([]OrderQueryResponse, 0)

	for rows.Next() {
		var (
			id              uuid.UUID
			orderType       int
			status          int
			deliveryAddress string
			tableID         *uuid.UUID
			totalCents      int64
			createdAt       time.Time
		)

		if err := rows.Scan(
			&id,
			&orderType,
			&status,
			&deliveryAddress,
			&tableID,
			&totalCents,
			&createdAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp := OrderQueryResponse{
			ID:              orderID,
			OrderType:       order.Type(orderType),
			Status:          order.Status(status),
			DeliveryAddress: deliveryAddress,
			TotalAmount:     kernel.NewMoney(totalCents),
			CreatedAt:       createdAt,
		}

		if tableID != nil {
			tID, tErr := kernel.UUIDFromBytes((*tableID)[:])
			if tErr != nil {
				return nil, tErr
			}
			resp.TableID = &tID
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
