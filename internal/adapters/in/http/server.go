// Package http provides the inbound REST adapter. It translates HTTP requests
// into commands and queries and maps error classes to status codes: validation
// failures to 400, missing objects to 404, illegal lifecycle transitions to 409.
package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	serveOrderHandler            commands.ServeOrderCommandHandler
	startOrderDeliveryHandler    commands.StartOrderDeliveryCommandHandler
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	startOrderDeliveryHandler commands.StartOrderDeliveryCommandHandler,
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		serveOrderHandler:            serveOrderHandler,
		startOrderDeliveryHandler:    startOrderDeliveryHandler,
		completeOrderDeliveryHandler: completeOrderDeliveryHandler,
		completeOrderHandler:         completeOrderHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.PUT("/orders/:id/accept", s.AcceptOrder)
	api.PUT("/orders/:id/serve", s.ServeOrder)
	api.PUT("/orders/:id/start-delivery", s.StartOrderDelivery)
	api.PUT("/orders/:id/complete-delivery", s.CompleteOrderDelivery)
	api.PUT("/orders/:id/complete", s.CompleteOrder)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return s.writeError(ctx, err)
	}

	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, itemReq := range req.LineItems {
		menuID, idErr := kernel.UUIDFromString(itemReq.MenuID)
		if idErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("menuId", idErr))
		}

		item, itemErr := order.NewLineItem(menuID, itemReq.Quantity, kernel.NewMoney(itemReq.PriceCents))
		if itemErr != nil {
			return s.writeError(ctx, itemErr)
		}
		lineItems = append(lineItems, item)
	}

	var tableID *kernel.UUID
	if req.OrderTableID != nil {
		id, idErr := kernel.UUIDFromString(*req.OrderTableID)
		if idErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("orderTableId", idErr))
		}
		tableID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, orderType, lineItems, req.DeliveryAddress, tableID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all non-completed orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ServeOrder handles PUT /api/v1/orders/:id/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartOrderDelivery handles PUT /api/v1/orders/:id/start-delivery.
func (s *Server) StartOrderDelivery(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.startOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrderDelivery handles PUT /api/v1/orders/:id/complete-delivery.
func (s *Server) CompleteOrderDelivery(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderDeliveryCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.completeOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles PUT /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// orderIDParam extracts and validates the order id path parameter.
func (s *Server) orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}

// writeError maps an application error to its HTTP status.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
