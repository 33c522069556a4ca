package commands

import (
	"context"
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Rejects duplicate order identifiers and persists new orders in pending
// status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo)
//	cmd, _ := NewCreateOrderCommand("ORDER001", "Laptop", 1, "CUST001")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the order repository for duplicate detection and persistence.
func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the order creation command.
// Fails with errs.ObjectAlreadyExistsError when the identifier is already
// stored; otherwise builds the order in pending status, persists it, and
// returns the created aggregate.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	_, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("order", cmd.OrderID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.ItemName(), cmd.Quantity(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
