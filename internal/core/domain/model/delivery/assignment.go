package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through the NewAssignment factory method.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrAssignmentOrderIsRequired is returned when attempting to create an
	// assignment without an order.
	ErrAssignmentOrderIsRequired = errs.NewValueIsRequiredError("order")

	// ErrAssignmentDriverIsRequired is returned when attempting to create an
	// assignment without a driver.
	ErrAssignmentDriverIsRequired = errs.NewValueIsRequiredError("driver")
)

// Driver is the contract the dispatcher consumes from driver management.
type Driver interface {
	// IsAvailable reports whether the driver can take a delivery right now.
	IsAvailable() bool
	// StartDelivery marks the driver busy with a delivery.
	StartDelivery()
	// CompleteDelivery marks the driver available again.
	CompleteDelivery()
}

// Assignment binds one order to one driver for a delivery run. It is created by
// the dispatcher at scheduling time and completed in place: no new object is
// made when the delivery finishes, the delivery time is simply recorded and the
// bound order moves to its delivered state.
//
// The estimated duration is pulled from the order at assignment time, so later
// changes to the order do not shift an in-flight estimate.
type Assignment struct {
	// order is the order being delivered
	order *order.Order
	// driver is the driver carrying the order
	driver Driver
	// dispatchTime is set at creation
	dispatchTime time.Time
	// deliveryTime is nil until the delivery completes
	deliveryTime *time.Time
	// estimatedMinutes is the order's delivery estimate frozen at assignment time
	estimatedMinutes int
	// trackingNumber is "TRK-" followed by epoch milliseconds
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewAssignment creates an Assignment for the given order and driver, freezing
// the order's current delivery estimate and issuing a tracking number.
//
// Both order and driver are required; a missing one fails with the matching
// value error. Address presence is the dispatcher's concern, not checked here.
func NewAssignment(o *order.Order, d Driver) (*Assignment, error) {
	if o == nil {
		return nil, ErrAssignmentOrderIsRequired
	}
	if d == nil {
		return nil, ErrAssignmentDriverIsRequired
	}

	return &Assignment{
		order:            o,
		driver:           d,
		dispatchTime:     time.Now(),
		estimatedMinutes: o.DeliveryTime(),
		trackingNumber:   fmt.Sprintf("TRK-%d", time.Now().UnixMilli()),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Assignment was created through NewAssignment.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// Order returns the order being delivered.
func (a *Assignment) Order() *order.Order {
	return a.order
}

// Driver returns the driver carrying the order.
func (a *Assignment) Driver() Driver {
	return a.driver
}

// DispatchTime returns the moment the assignment was created.
func (a *Assignment) DispatchTime() time.Time {
	return a.dispatchTime
}

// DeliveryTime returns the completion timestamp, nil while the delivery is
// still in flight.
func (a *Assignment) DeliveryTime() *time.Time {
	return a.deliveryTime
}

// EstimatedMinutes returns the delivery estimate frozen at assignment time.
func (a *Assignment) EstimatedMinutes() int {
	return a.estimatedMinutes
}

// TrackingNumber returns the assignment's tracking number.
func (a *Assignment) TrackingNumber() string {
	return a.trackingNumber
}

// IsCompleted reports whether the delivery has finished.
func (a *Assignment) IsCompleted() bool {
	return a.deliveryTime != nil
}

// Complete records the delivery time and moves the bound order to Delivered.
// Completing an already completed assignment is a no-op.
func (a *Assignment) Complete() {
	if a.deliveryTime != nil {
		return
	}

	now := time.Now()
	a.deliveryTime = &now
	a.order.UpdateStatus(order.Delivered)
}
