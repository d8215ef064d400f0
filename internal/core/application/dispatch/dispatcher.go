// Package dispatch maintains the driver pool and the set of active delivery
// assignments: scheduling, completion and address validation live here.
package dispatch

import (
	"errors"
	"strings"
	"sync"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNoAvailableDriver is returned when no registered driver is currently
	// available. The pool being empty is the same condition.
	ErrNoAvailableDriver = errors.New("no available driver")

	// ErrDeliveryAddressMissing is returned when scheduling a delivery for an
	// order that has no delivery address.
	ErrDeliveryAddressMissing = errors.New("order has no delivery address")

	// ErrDriverIsRequired is returned when scheduling a delivery without a driver.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driver")
)

// DeliveryDispatcher maintains the pool of registered drivers and the set of
// deliveries currently in flight.
//
// The pool preserves registration order, and FindAvailableDriver scans it in
// that order: the earliest-registered available driver always wins. That
// ordering is part of the observable contract, not an implementation detail.
//
// The dispatcher is safe for concurrent use; scheduling and completion are each
// atomic with respect to the dispatcher's own state. Scheduling a delivery
// after a payment settles is not atomic as a pair: callers sequence the two.
type DeliveryDispatcher struct {
	mu sync.RWMutex
	// drivers is the pool in registration order; duplicates are not rejected
	drivers []delivery.Driver
	// active is the set of assignments currently in flight
	active map[*delivery.Assignment]struct{}
}

// NewDeliveryDispatcher creates a dispatcher with an empty driver pool and no
// active deliveries.
func NewDeliveryDispatcher() *DeliveryDispatcher {
	return &DeliveryDispatcher{
		active: make(map[*delivery.Assignment]struct{}),
	}
}

// AddDriver appends a driver to the pool. No duplicate check is performed.
func (d *DeliveryDispatcher) AddDriver(driver delivery.Driver) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.drivers = append(d.drivers, driver)
}

// DriverCount returns the number of registered drivers.
func (d *DeliveryDispatcher) DriverCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.drivers)
}

// FindAvailableDriver returns the first driver, in registration order, that
// reports itself available.
//
// Returns ErrNoAvailableDriver when no driver qualifies or the pool is empty.
func (d *DeliveryDispatcher) FindAvailableDriver() (delivery.Driver, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, driver := range d.drivers {
		if driver.IsAvailable() {
			return driver, nil
		}
	}
	return nil, ErrNoAvailableDriver
}

// ScheduleDelivery assigns the order to the driver and starts the delivery.
//
// An order without a delivery address fails with ErrDeliveryAddressMissing and
// no state changes: the driver is not marked busy and no assignment is created.
// Otherwise an Assignment is built (freezing the order's current delivery
// estimate), the driver is marked busy and the assignment joins the active set.
func (d *DeliveryDispatcher) ScheduleDelivery(o *order.Order, driver delivery.Driver) (*delivery.Assignment, error) {
	if driver == nil {
		return nil, ErrDriverIsRequired
	}
	if o == nil || o.DeliveryAddress() == nil {
		return nil, ErrDeliveryAddressMissing
	}

	assignment, err := delivery.NewAssignment(o, driver)
	if err != nil {
		return nil, err
	}

	driver.StartDelivery()

	d.mu.Lock()
	d.active[assignment] = struct{}{}
	d.mu.Unlock()

	return assignment, nil
}

// CompleteDelivery finishes an active delivery: the assignment records its
// delivery time (moving the bound order to Delivered), the driver becomes
// available again and the assignment leaves the active set. The assignment
// object itself may still be held by the caller.
func (d *DeliveryDispatcher) CompleteDelivery(assignment *delivery.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	assignment.Complete()
	assignment.Driver().CompleteDelivery()

	d.mu.Lock()
	delete(d.active, assignment)
	d.mu.Unlock()

	return nil
}

// ActiveDeliveriesCount returns the number of deliveries currently in flight.
func (d *DeliveryDispatcher) ActiveDeliveriesCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.active)
}

// ValidateAddress reports whether an address is deliverable: non-nil with a
// non-blank street, house number and city. Apartment number and postal code
// are optional and never checked.
func (d *DeliveryDispatcher) ValidateAddress(address *kernel.Address) bool {
	return address != nil &&
		strings.TrimSpace(address.Street()) != "" &&
		strings.TrimSpace(address.HouseNumber()) != "" &&
		strings.TrimSpace(address.City()) != ""
}
