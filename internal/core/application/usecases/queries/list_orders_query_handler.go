package queries

import (
	"context"

	"ordertracker/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders from the store, optionally
// filtered by customer.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(repo)
//	response, err := handler.Handle(ctx, NewListOrdersQuery("CUST001"))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("customer has %d orders\n", response.Count)
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orderRepository ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the listing. Returns every order when the query has no
// customer filter, otherwise the customer's subset, in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if query.CustomerID() == "" {
		all, err := h.orderRepository.GetAll(ctx)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		return ListOrdersQueryResponse{Orders: all, Count: len(all)}, nil
	}

	matched, err := h.orderRepository.GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:     matched,
		Count:      len(matched),
		CustomerID: query.CustomerID(),
	}, nil
}
