package registry_test

import (
	"testing"

	"fulfillment/internal/core/application/registry"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProduct struct {
	price float64
}

func (p *fakeProduct) Name() string        { return "Margherita" }
func (p *fakeProduct) FinalPrice() float64 { return p.price }
func (p *fakeProduct) IsAvailable() bool   { return true }

type fakeCustomer struct {
	name    string
	history []string
}

func (c *fakeCustomer) FullName() string { return c.name }
func (c *fakeCustomer) AddToOrderHistory(orderID string) {
	c.history = append(c.history, orderID)
}

func newRegistry(t *testing.T) *registry.OrderRegistry {
	t.Helper()

	ids, err := kernel.NewSequence("ORD")
	require.NoError(t, err)

	reg, err := registry.NewOrderRegistry(ids)
	require.NoError(t, err)
	return reg
}

func TestNewOrderRegistry(t *testing.T) {
	t.Run("should create empty registry", func(t *testing.T) {
		reg := newRegistry(t)

		assert.Equal(t, 0, reg.OrderCount())
	})

	t.Run("should fail without a sequence", func(t *testing.T) {
		reg, err := registry.NewOrderRegistry(nil)

		require.Error(t, err)
		assert.Nil(t, reg)
		assert.Equal(t, registry.ErrSequenceIsRequired, err)
	})
}

func TestOrderRegistry_CreateOrder(t *testing.T) {
	t.Run("should allocate sequential ids in call order", func(t *testing.T) {
		reg := newRegistry(t)
		customer := &fakeCustomer{name: "John Doe"}

		first, err := reg.CreateOrder(customer)
		require.NoError(t, err)
		second, err := reg.CreateOrder(customer)
		require.NoError(t, err)
		third, err := reg.CreateOrder(customer)
		require.NoError(t, err)

		assert.Equal(t, "ORD-1", first.ID())
		assert.Equal(t, "ORD-2", second.ID())
		assert.Equal(t, "ORD-3", third.ID())
		assert.Equal(t, 3, reg.OrderCount())
	})

	t.Run("should record the id in the customer's order history", func(t *testing.T) {
		reg := newRegistry(t)
		customer := &fakeCustomer{name: "John Doe"}

		o, err := reg.CreateOrder(customer)

		require.NoError(t, err)
		assert.Equal(t, []string{o.ID()}, customer.history)
	})

	t.Run("should create orders in Pending status", func(t *testing.T) {
		reg := newRegistry(t)

		o, err := reg.CreateOrder(nil)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsPaid())
	})
}

func TestOrderRegistry_GetOrder(t *testing.T) {
	t.Run("should return a stored order", func(t *testing.T) {
		reg := newRegistry(t)
		created, _ := reg.CreateOrder(nil)

		found, err := reg.GetOrder(created.ID())

		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("should fail with not-found for an absent id", func(t *testing.T) {
		reg := newRegistry(t)

		found, err := reg.GetOrder("ORD-404")

		require.Error(t, err)
		assert.Nil(t, found)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRegistry_CancelOrder(t *testing.T) {
	t.Run("should set status to Cancelled", func(t *testing.T) {
		reg := newRegistry(t)
		o, _ := reg.CreateOrder(nil)

		err := reg.CancelOrder(o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail with not-found and leave the registry unchanged", func(t *testing.T) {
		reg := newRegistry(t)
		o, _ := reg.CreateOrder(nil)

		err := reg.CancelOrder("ORD-404")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 1, reg.OrderCount())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrderRegistry_UpdateOrderStatus(t *testing.T) {
	t.Run("should forward the status unconditionally", func(t *testing.T) {
		reg := newRegistry(t)
		o, _ := reg.CreateOrder(nil)

		require.NoError(t, reg.UpdateOrderStatus(o.ID(), order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, reg.UpdateOrderStatus(o.ID(), order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with not-found for an absent id", func(t *testing.T) {
		reg := newRegistry(t)

		err := reg.UpdateOrderStatus("ORD-404", order.Ready)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRegistry_TotalRevenue(t *testing.T) {
	t.Run("should be 0 for an empty registry", func(t *testing.T) {
		reg := newRegistry(t)

		assert.InDelta(t, 0.0, reg.TotalRevenue(), 0.0001)
	})

	t.Run("should sum final prices of paid orders only", func(t *testing.T) {
		reg := newRegistry(t)

		paid, _ := reg.CreateOrder(nil)
		paid.AddItem(&fakeProduct{price: 500}, 2)
		require.True(t, paid.ProcessPayment(1000))

		unpaid, _ := reg.CreateOrder(nil)
		unpaid.AddItem(&fakeProduct{price: 300}, 1)

		assert.InDelta(t, 1000.0, reg.TotalRevenue(), 0.0001)
	})

	t.Run("should be 0 when no order is paid", func(t *testing.T) {
		reg := newRegistry(t)
		o, _ := reg.CreateOrder(nil)
		o.AddItem(&fakeProduct{price: 300}, 1)

		assert.InDelta(t, 0.0, reg.TotalRevenue(), 0.0001)
	})
}

func TestOrderRegistry_AllOrders(t *testing.T) {
	t.Run("should return distinct map instances with equal contents", func(t *testing.T) {
		reg := newRegistry(t)
		reg.CreateOrder(nil)
		reg.CreateOrder(nil)

		first := reg.AllOrders()
		second := reg.AllOrders()

		assert.Equal(t, first, second)

		// Mutating one copy affects neither the registry nor the other copy
		delete(first, "ORD-1")
		assert.Len(t, second, 2)
		assert.Equal(t, 2, reg.OrderCount())
	})
}
