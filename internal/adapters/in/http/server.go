package http

import (
	"errors"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server binds the REST surface to the order use cases.
// It coordinates between HTTP handlers and application command and query
// handlers, translating business errors into response status codes.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	listByStatusHandler queries.ListOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listByStatusHandler queries.ListOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		listByStatusHandler: listByStatusHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Index)
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/create", s.CreateOrder)
	api.GET("/get/:order_id", s.GetOrder)
	api.PUT("/update/:order_id", s.UpdateOrderStatus)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/status/:status", s.ListOrdersByStatus)
}

// Index handles GET / - serves the static API catalogue.
func (s *Server) Index(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"message": "Welcome to the Order Tracker API!",
		"endpoints": map[string]string{
			"create_order":           "POST /api/create",
			"get_order":              "GET /api/get/<order_id>",
			"update_order_status":    "PUT /api/update/<order_id>",
			"get_all_orders":         "GET /api/orders",
			"get_orders_by_customer": "GET /api/orders?customer_id=<customer_id>",
			"get_orders_by_status":   "GET /api/orders/status/<status>",
		},
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/create - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.ItemName, req.Quantity, req.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/get/:order_id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("order_id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// UpdateOrderStatus handles PUT /api/update/:order_id - moves an order to
// a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("order_id"), status)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ListOrders handles GET /api/orders - lists all orders, optionally
// filtered by the customer_id query parameter.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery(ctx.QueryParam("customer_id"))

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders:     toOrderResponses(response.Orders),
		Count:      response.Count,
		CustomerID: response.CustomerID,
	})
}

// ListOrdersByStatus handles GET /api/orders/status/:status - lists the
// orders currently in one status.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(status)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	response, err := s.listByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders: toOrderResponses(response.Orders),
		Count:  response.Count,
		Status: response.Status.String(),
	})
}

// errorJSON writes the error body with the status code implied by the
// error's classification. Business failures are always client errors;
// anything unclassified is a 500.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
