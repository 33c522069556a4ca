package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order from the store.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(repo)
//	query, _ := NewGetOrderQuery("ORDER001")
//
//	found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order lookup failed: %w", err)
//	}
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup.
// Fails with errs.ObjectNotFoundError when no order has the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Get(ctx, query.OrderID())
}
