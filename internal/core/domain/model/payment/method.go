package payment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Method tags the way a payment is made.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	// This value (0) helps catch uninitialized Method values.
	MethodUnknown Method = iota

	// MethodCash is payment in cash on handover.
	MethodCash

	// MethodCard is payment by card through the terminal gateway.
	MethodCard

	// MethodOnline is payment through the online gateway.
	MethodOnline
)

// getMethodStrings returns a map of Method values to their string representations.
func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "UNKNOWN",
		MethodCash:    "CASH",
		MethodCard:    "CARD",
		MethodOnline:  "ONLINE",
	}
}

// getValidMethodStrings returns a map of only valid Method values.
func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:   "CASH",
		MethodCard:   "CARD",
		MethodOnline: "ONLINE",
	}
}

// Validate checks if the Method value is one of the known payment methods.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the wire tag of the method ("CASH", "CARD", "ONLINE").
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
