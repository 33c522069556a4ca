package queries

import (
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves stored orders, optionally filtered by customer.
// An empty customer ID means no filter: every stored order is returned.
//
// Example:
//
//	// All orders
//	query := NewListOrdersQuery("")
//
//	// Orders for one customer
//	query = NewListOrdersQuery("CUST001")
//
//	response, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for stored orders.
// Pass an empty customerID to list every order.
func NewListOrdersQuery(customerID string) ListOrdersQuery {
	return ListOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter; empty means no filter.
func (q ListOrdersQuery) CustomerID() string {
	return q.customerID
}

// ListOrdersQueryResponse carries the matched orders and their count.
// CustomerID echoes the filter when one was applied.
type ListOrdersQueryResponse struct {
	Orders     []*order.Order
	Count      int
	CustomerID string
}
