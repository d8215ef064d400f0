package kernel

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	minDiscountPercentage = 0.0
	maxDiscountPercentage = 100.0
)

// ErrDiscountIsNotConstructed is returned when a Discount instance was not created
// through the NewDiscount factory method.
var ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewDiscount constructor")

// Discount is a validated percentage value object. Unlike the raw discount field on
// an order, which accepts any value verbatim, a Discount can only exist within the
// [0, 100] range. Callers that want validated discounts construct one of these and
// pass its Percentage() on.
//
// Example usage:
//
//	d, err := kernel.NewDiscount(10)
//	if err != nil {
//	    // percentage out of range
//	}
//	total := d.ApplyTo(1200) // 1080
type Discount struct {
	percentage float64

	guard guard.ConstructorGuard
}

// NewDiscount creates a Discount with a percentage in [0, 100].
//
// Returns a ValueIsOutOfRangeError if the percentage is outside the allowed range.
func NewDiscount(percentage float64) (Discount, error) {
	if percentage < minDiscountPercentage || percentage > maxDiscountPercentage {
		return Discount{}, errs.NewValueIsOutOfRangeError(
			"discount percentage", percentage, minDiscountPercentage, maxDiscountPercentage)
	}

	return Discount{
		percentage: percentage,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Discount was created through NewDiscount.
func (d Discount) Validate() error {
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

// Percentage returns the discount percentage.
func (d Discount) Percentage() float64 {
	return d.percentage
}

// ApplyTo returns the amount after the discount is applied.
func (d Discount) ApplyTo(amount float64) float64 {
	return amount * (1 - d.percentage/100)
}
