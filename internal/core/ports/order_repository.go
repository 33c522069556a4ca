package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by identifier, customer, and lifecycle status.
//
// The repository performs no business validation beyond verifying that
// the aggregate was properly constructed; uniqueness and status rules
// belong to the use case layer.
type OrderRepository interface {
	// Add persists a new order aggregate keyed by its identifier.
	// Adding with an identifier that is already stored overwrites the
	// stored aggregate (last write wins); duplicate detection is the
	// caller's responsibility.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no order has that identifier.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves every stored order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves the orders placed by the given customer,
	// in insertion order.
	GetAllByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// GetAllByStatus retrieves the orders currently in the given status,
	// in insertion order.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
