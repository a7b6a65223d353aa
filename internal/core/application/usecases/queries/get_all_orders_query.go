// Package queries contains read-only operations for retrieving order state.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain model and read lean projections straight from the database.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order regardless of status.
// Used by back-office screens that need the complete order ledger.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query with no filtering or pagination.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderQueryResponse is the read model for a single order. It carries the
// order's lifecycle fields plus the total amount aggregated over its line
// items; individual line items are not part of the projection.
type OrderQueryResponse struct {
	ID              kernel.UUID
	OrderType       order.Type
	Status          order.Status
	DeliveryAddress string
	TableID         *kernel.UUID
	TotalAmount     kernel.Money
	CreatedAt       time.Time
}
