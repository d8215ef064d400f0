package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The status is a plain enumerated label: UpdateStatus on the aggregate performs an
// unconditional assignment and any state may follow any other. No transition table
// is enforced. Status still validates that a value is one of the known states, so
// labels arriving from external sources can be checked before use.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Confirmed indicates a successful payment settled the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup or dispatch.
	Ready

	// Delivering indicates a driver is on the way with the order.
	Delivering

	// Delivered indicates the delivery was completed. Terminal for delivery orders.
	Delivered

	// Cancelled indicates the order was cancelled.
	Cancelled

	// Completed indicates the transaction finished without delivery.
	Completed

	// InProgress is a coarse in-flight label used by reporting.
	InProgress
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Preparing:  "Preparing",
		Ready:      "Ready",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Completed:  "Completed",
		InProgress: "InProgress",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Preparing:  "Preparing",
		Ready:      "Ready",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Completed:  "Completed",
		InProgress: "InProgress",
	}
}

// Validate checks if the Status value is one of the known lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// Unknown (0) and any value outside the enumeration are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
