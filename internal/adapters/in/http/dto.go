package http

import (
	"time"

	"ordertracker/internal/core/domain/model/order"
)

// CreateOrderRequest is the body of POST /api/create.
type CreateOrderRequest struct {
	OrderID    string `json:"order_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	CustomerID string `json:"customer_id"`
}

// UpdateOrderStatusRequest is the body of PUT /api/update/:order_id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of one order.
// Timestamps serialize as RFC 3339 UTC.
type OrderResponse struct {
	OrderID    string    `json:"order_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderListResponse is the envelope for order listings. CustomerID and
// Status echo the applied filter and are omitted when not filtering.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Count      int             `json:"count"`
	CustomerID string          `json:"customer_id,omitempty"`
	Status     string          `json:"status,omitempty"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toOrderResponse maps a domain aggregate to its wire representation.
func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		OrderID:    o.ID(),
		ItemName:   o.ItemName(),
		Quantity:   o.Quantity(),
		CustomerID: o.CustomerID(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

// toOrderResponses maps a slice of aggregates, never returning nil so the
// JSON encodes as an empty array rather than null.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}
