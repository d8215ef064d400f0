// Package registry owns the order lifecycle: creation with sequential ids,
// lookup, cancellation, status updates and revenue aggregation.
package registry

import (
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrSequenceIsRequired is returned when attempting to create a registry without
// an id allocator.
var ErrSequenceIsRequired = errs.NewValueIsRequiredError("sequence")

// OrderRegistry owns order creation, lookup, cancellation, status updates and
// revenue aggregation. It holds the id allocator for the "ORD-" id-space and the
// id-to-order map for its whole lifetime.
//
// The registry is safe for concurrent use. Two concurrent CreateOrder calls
// never receive the same id, and every operation is atomic with respect to the
// registry's own state. Nothing here spans components: payment settlement and
// delivery scheduling against a created order are separate, non-atomic steps.
//
// Example usage:
//
//	ids, _ := kernel.NewSequence("ORD")
//	reg, _ := registry.NewOrderRegistry(ids)
//
//	o, _ := reg.CreateOrder(customer) // id "ORD-1"
//	o.AddItem(margherita, 2)
type OrderRegistry struct {
	mu sync.RWMutex
	// ids allocates order ids; shared with no other id-space
	ids *kernel.Sequence
	// orders maps order id to the owned order
	orders map[string]*order.Order
}

// NewOrderRegistry creates an empty registry drawing ids from the given sequence.
//
// Returns ErrSequenceIsRequired if the sequence is nil.
func NewOrderRegistry(ids *kernel.Sequence) (*OrderRegistry, error) {
	if ids == nil {
		return nil, ErrSequenceIsRequired
	}

	return &OrderRegistry{
		ids:    ids,
		orders: make(map[string]*order.Order),
	}, nil
}

// CreateOrder allocates the next order id, constructs a Pending order for the
// customer, stores it and records the id in the customer's order history.
//
// The customer reference is permitted to be nil; history recording is skipped
// in that case.
func (r *OrderRegistry) CreateOrder(customer order.Customer) (*order.Order, error) {
	id := r.ids.Next()

	o, err := order.NewOrder(id, customer)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.orders[id] = o
	r.mu.Unlock()

	if customer != nil {
		customer.AddToOrderHistory(id)
	}

	return o, nil
}

// GetOrder returns the order with the given id.
//
// Returns an ObjectNotFoundError when the id is absent. The lookup is never
// retried internally.
func (r *OrderRegistry) GetOrder(id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

// CancelOrder moves the order with the given id to Cancelled.
//
// Returns an ObjectNotFoundError when the id is absent; the registry is left
// unchanged in that case.
func (r *OrderRegistry) CancelOrder(id string) error {
	o, err := r.GetOrder(id)
	if err != nil {
		return err
	}

	o.UpdateStatus(order.Cancelled)
	return nil
}

// UpdateOrderStatus forwards the target status to the order with the given id.
// The assignment is unconditional, as on the aggregate itself.
//
// Returns an ObjectNotFoundError when the id is absent.
func (r *OrderRegistry) UpdateOrderStatus(id string, status order.Status) error {
	o, err := r.GetOrder(id)
	if err != nil {
		return err
	}

	o.UpdateStatus(status)
	return nil
}

// TotalRevenue sums the final price of every paid order. An empty or fully
// unpaid registry yields 0.
func (r *OrderRegistry) TotalRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	revenue := 0.0
	for _, o := range r.orders {
		if o.IsPaid() {
			revenue += o.FinalPrice()
		}
	}
	return revenue
}

// OrderCount returns the number of orders in the registry.
func (r *OrderRegistry) OrderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

// AllOrders returns a defensive shallow copy of the id-to-order map. Each call
// returns a distinct map instance; mutating it never affects the registry.
func (r *OrderRegistry) AllOrders() map[string]*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make(map[string]*order.Order, len(r.orders))
	for id, o := range r.orders {
		orders[id] = o
	}
	return orders
}
