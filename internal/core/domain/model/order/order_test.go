package order_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create order with pending status and equal timestamps", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")

		require.NoError(t, err)
		assert.Equal(t, "ORDER001", o.ID())
		assert.Equal(t, "Laptop", o.ItemName())
		assert.Equal(t, 1, o.Quantity())
		assert.Equal(t, "CUST001", o.CustomerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		o, err := order.NewOrder("", "Laptop", 1, "CUST001")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject empty item name", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "", 1, "CUST001")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject empty customer id", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			o, err := order.NewOrder("ORDER001", "Laptop", quantity, "CUST001")

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, o)
		}
	})

	t.Run("should report all invalid fields at once", func(t *testing.T) {
		_, err := order.NewOrder("", "", 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order_id")
		assert.Contains(t, err.Error(), "item_name")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "customer_id")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder("ORDER001", "Laptop", 2, "CUST001",
			order.Shipped, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := order.RestoreOrder("ORDER001", "Laptop", 2, "CUST001",
			order.Unknown, now, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject updated_at before created_at", func(t *testing.T) {
		createdAt := time.Now().UTC()

		_, err := order.RestoreOrder("ORDER001", "Laptop", 2, "CUST001",
			order.Pending, createdAt, createdAt.Add(-time.Second))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero timestamps", func(t *testing.T) {
		_, err := order.RestoreOrder("ORDER001", "Laptop", 2, "CUST001",
			order.Pending, time.Time{}, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for order not created via constructor", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should set status and advance updated_at", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
		require.NoError(t, err)

		createdAt := o.CreatedAt()
		previousUpdatedAt := o.UpdatedAt()

		err = o.UpdateStatus(order.Shipped)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, !o.UpdatedAt().Before(previousUpdatedAt))
	})

	t.Run("should allow any valid status from any other", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
		require.NoError(t, err)

		// No transition graph: delivered back to pending is allowed.
		require.NoError(t, o.UpdateStatus(order.Delivered))
		require.NoError(t, o.UpdateStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refresh updated_at for same-status update", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
		require.NoError(t, err)

		previousUpdatedAt := o.UpdatedAt()
		require.NoError(t, o.UpdateStatus(order.Pending))

		assert.True(t, !o.UpdatedAt().Before(previousUpdatedAt))
	})

	t.Run("should reject invalid status and leave order unchanged", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
		require.NoError(t, err)

		previousUpdatedAt := o.UpdatedAt()

		err = o.UpdateStatus(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, previousUpdatedAt, o.UpdatedAt())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by id", func(t *testing.T) {
		first, err := order.NewOrder("ORDER001", "Laptop", 1, "CUST001")
		require.NoError(t, err)
		second, err := order.NewOrder("ORDER001", "Mouse", 3, "CUST002")
		require.NoError(t, err)
		third, err := order.NewOrder("ORDER002", "Laptop", 1, "CUST001")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
		assert.False(t, first.IsEqual(nil))
	})
}
