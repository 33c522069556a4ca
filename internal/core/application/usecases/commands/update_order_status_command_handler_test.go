package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORDER001", order.Shipped)

	stored, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
	require.NoError(t, err)
	createdAt := stored.CreatedAt()
	previousUpdatedAt := stored.UpdatedAt()

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, "ORDER001").Return(stored, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(repo)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Shipped, updated.Status())
	assert.Equal(t, createdAt, updated.CreatedAt())
	assert.True(t, !updated.UpdatedAt().Before(previousUpdatedAt))
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewUpdateOrderStatusCommandHandler(repo)

	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateOrderStatusCommand("MISSING", order.Shipped)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "MISSING").
		Return(nil, errs.NewObjectNotFoundError("order", "MISSING")).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(repo)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORDER001", order.Cancelled)

	stored, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, "ORDER001").Return(stored, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(repo)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	repo.AssertExpectations(t)
}
