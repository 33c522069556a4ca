package queries

import (
	"context"

	"ordertracker/internal/core/ports"
)

// ListOrdersByStatusQueryHandler retrieves orders in a given lifecycle
// status.
//
// Example:
//
//	handler := NewListOrdersByStatusQueryHandler(repo)
//	query, _ := NewListOrdersByStatusQuery(order.Pending)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders pending\n", response.Count)
type ListOrdersByStatusQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewListOrdersByStatusQueryHandler creates a handler for status listings.
func NewListOrdersByStatusQueryHandler(orderRepository ports.OrderRepository) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{orderRepository: orderRepository}
}

// Handle executes the listing, returning the status subset in insertion
// order.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) (ListOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersByStatusQueryResponse{}, err
	}

	matched, err := h.orderRepository.GetAllByStatus(ctx, query.Status())
	if err != nil {
		return ListOrdersByStatusQueryResponse{}, err
	}

	return ListOrdersByStatusQueryResponse{
		Orders: matched,
		Count:  len(matched),
		Status: query.Status(),
	}, nil
}
