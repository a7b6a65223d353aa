package http

import (
	"time"

	"kitchen/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one requested menu selection within an order creation request.
// PriceCents is the client's price snapshot and must match the menu's current price.
type LineItemRequest struct {
	MenuID     string `json:"menuId"`
	Quantity   int64  `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
// DeliveryAddress is required for DELIVERY orders, OrderTableID for EAT_IN orders.
type CreateOrderRequest struct {
	OrderType       string            `json:"orderType"`
	LineItems       []LineItemRequest `json:"lineItems"`
	DeliveryAddress string            `json:"deliveryAddress,omitempty"`
	OrderTableID    *string           `json:"orderTableId,omitempty"`
}

// CreateOrderResponse carries the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the JSON projection of a single order.
type OrderResponse struct {
	ID              string    `json:"id"`
	OrderType       string    `json:"orderType"`
	Status          string    `json:"status"`
	DeliveryAddress string    `json:"deliveryAddress,omitempty"`
	OrderTableID    *string   `json:"orderTableId,omitempty"`
	TotalCents      int64     `json:"totalCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// toOrderResponse maps a query read model to its JSON representation.
func toOrderResponse(o queries.OrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID.String(),
		OrderType:       o.OrderType.String(),
		Status:          o.Status.String(),
		DeliveryAddress: o.DeliveryAddress,
		TotalCents:      o.TotalAmount.Cents(),
		CreatedAt:       o.CreatedAt,
	}

	if o.TableID != nil {
		tableID := o.TableID.String()
		resp.OrderTableID = &tableID
	}

	return resp
}
