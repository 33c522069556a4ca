// Package orderrepo provides the in-memory implementation of the order
// repository. Orders live in a map keyed by order ID for the lifetime of
// the process; a key slice kept beside the map preserves insertion order
// so listings are deterministic.
package orderrepo

import (
	"context"
	"sync"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// InMemoryOrderRepository implements OrderRepository with a mutex-guarded map.
//
// Stored aggregates are copied on the way in and on the way out, so a
// caller mutating an order it holds does not change the stored state
// until it persists the order again. The mutex is held only for the
// duration of the map operation, never across validation or business
// logic.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]order.Order
	ids    []string
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]order.Order),
	}
}

// Add saves a new order keyed by its identifier. Overwriting an existing
// key is not an error (last write wins) and does not change the key's
// position in the insertion order.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		r.ids = append(r.ids, aggregate.ID())
	}
	r.orders[aggregate.ID()] = *aggregate
	return nil
}

// Update saves an existing order. Same last-write-wins semantics as Add;
// the split mirrors the port's intent, not a difference in behavior.
func (r *InMemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return r.Add(ctx, aggregate)
}

// Get retrieves an order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	stored, ok := r.orders[id]
	r.mu.Unlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return &stored, nil
}

// GetAll retrieves every stored order in insertion order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.collect(func(order.Order) bool { return true })
}

// GetAllByCustomer retrieves the orders placed by the given customer.
func (r *InMemoryOrderRepository) GetAllByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	return r.collect(func(o order.Order) bool { return o.CustomerID() == customerID })
}

// GetAllByStatus retrieves the orders currently in the given status.
func (r *InMemoryOrderRepository) GetAllByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.collect(func(o order.Order) bool { return o.Status() == status })
}

// collect copies the orders matching the predicate, walking IDs in
// insertion order.
func (r *InMemoryOrderRepository) collect(match func(order.Order) bool) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		stored := r.orders[id]
		if match(stored) {
			matched = append(matched, &stored)
		}
	}
	return matched, nil
}
