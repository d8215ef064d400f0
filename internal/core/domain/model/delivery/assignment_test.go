package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver toggles availability on the start/complete signals.
type fakeDriver struct {
	available bool
}

func (d *fakeDriver) IsAvailable() bool { return d.available }
func (d *fakeDriver) StartDelivery()    { d.available = false }
func (d *fakeDriver) CompleteDelivery() { d.available = true }

func deliveryOrder(t *testing.T, distance float64) *order.Order {
	t.Helper()

	o, err := order.NewOrder("ORD-1", nil)
	require.NoError(t, err)
	o.SetDeliveryAddress(kernel.NewAddress("Baker Street", "221B", "", "London", "", distance))
	return o
}

func TestNewAssignment(t *testing.T) {
	t.Run("should freeze the estimate and issue a tracking number", func(t *testing.T) {
		o := deliveryOrder(t, 4.0)
		driver := &fakeDriver{available: true}

		a, err := delivery.NewAssignment(o, driver)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, o, a.Order())
		assert.Equal(t, driver, a.Driver())
		assert.Equal(t, 50, a.EstimatedMinutes()) // 30 + floor(5*4)
		assert.Contains(t, a.TrackingNumber(), "TRK-")
		assert.False(t, a.DispatchTime().IsZero())
		assert.Nil(t, a.DeliveryTime())
		assert.False(t, a.IsCompleted())
	})

	t.Run("should keep the frozen estimate when the order changes later", func(t *testing.T) {
		o := deliveryOrder(t, 2.0)
		a, _ := delivery.NewAssignment(o, &fakeDriver{available: true})

		o.SetDeliveryAddress(kernel.NewAddress("Far Road", "1", "", "London", "", 9.0))

		assert.Equal(t, 40, a.EstimatedMinutes()) // still 30 + floor(5*2)
	})

	t.Run("should fail without an order", func(t *testing.T) {
		a, err := delivery.NewAssignment(nil, &fakeDriver{})

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Equal(t, delivery.ErrAssignmentOrderIsRequired, err)
	})

	t.Run("should fail without a driver", func(t *testing.T) {
		a, err := delivery.NewAssignment(deliveryOrder(t, 1), nil)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Equal(t, delivery.ErrAssignmentDriverIsRequired, err)
	})
}

func TestAssignment_Complete(t *testing.T) {
	t.Run("should record delivery time and move the order to Delivered", func(t *testing.T) {
		o := deliveryOrder(t, 2.0)
		a, _ := delivery.NewAssignment(o, &fakeDriver{available: true})

		a.Complete()

		assert.True(t, a.IsCompleted())
		require.NotNil(t, a.DeliveryTime())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should be a no-op when already completed", func(t *testing.T) {
		o := deliveryOrder(t, 2.0)
		a, _ := delivery.NewAssignment(o, &fakeDriver{available: true})

		a.Complete()
		first := *a.DeliveryTime()

		a.Complete()

		assert.Equal(t, first, *a.DeliveryTime())
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("should fail validation for nil assignment", func(t *testing.T) {
		var a *delivery.Assignment

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrAssignmentIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value assignment", func(t *testing.T) {
		var a delivery.Assignment

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrAssignmentIsNotConstructed, err)
	})
}
