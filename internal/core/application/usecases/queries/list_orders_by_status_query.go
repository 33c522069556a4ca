package queries

import (
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
		"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
	)
)

// ListOrdersByStatusQuery retrieves the orders currently in one lifecycle
// status.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(order.Shipped)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
type ListOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery creates a query for orders in one status.
// Validates that the status is one of the valid lifecycle statuses.
func NewListOrdersByStatusQuery(status order.Status) (ListOrdersByStatusQuery, error) {
	query := ListOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersByStatusQueryIsNotConstructed if validation fails.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *ListOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// ListOrdersByStatusQueryResponse carries the matched orders, their
// count, and the status that was queried.
type ListOrdersByStatusQueryResponse struct {
	Orders []*order.Order
	Count  int
	Status order.Status
}
