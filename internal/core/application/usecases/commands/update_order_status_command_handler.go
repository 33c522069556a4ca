package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// updates. Loads the order, applies the status change through the
// aggregate, and persists the result.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(repo)
//	cmd, _ := NewUpdateOrderStatusCommand("ORDER001", order.Shipped)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires the order repository for lookup and persistence.
func NewUpdateOrderStatusCommandHandler(orderRepository ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the status update command.
// Fails with errs.ObjectNotFoundError when the order does not exist.
// On success the order carries the new status and a refreshed update
// timestamp; the creation timestamp never changes.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = stored.UpdateStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.orderRepository.Update(ctx, stored); err != nil {
		return nil, err
	}

	return stored, nil
}
