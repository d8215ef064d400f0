package services

import (
	"fulfillment/internal/core/domain/model/order"
)

// PricingStrategy is an interchangeable total-price policy. Implementations are
// pure functions of the order's base price and delivery cost and must not
// mutate the order.
//
// Example usage:
//
//	var strategy services.PricingStrategy = services.NewStandardPricing()
//	quote := strategy.CalculatePrice(o)
//
//	strategy = services.NewPremiumPricing(100)
//	quote = strategy.CalculatePrice(o) // same order, different policy
type PricingStrategy interface {
	// CalculatePrice computes the quoted total for the order.
	CalculatePrice(o *order.Order) float64
}

// StandardPricing quotes the base price plus the delivery cost, nothing else.
type StandardPricing struct{}

// NewStandardPricing creates the standard pricing policy.
func NewStandardPricing() StandardPricing {
	return StandardPricing{}
}

// CalculatePrice returns price plus delivery cost.
func (StandardPricing) CalculatePrice(o *order.Order) float64 {
	return o.Price() + o.DeliveryCost()
}

// DiscountPricing quotes the standard total reduced by a percentage.
//
// The percentage is stored verbatim and mutable via SetPercentage, with no range
// validation. This mirrors the order's own unvalidated discount field; the
// validated counterpart is kernel.Discount.
type DiscountPricing struct {
	percentage float64
}

// NewDiscountPricing creates a discount pricing policy with the given percentage.
func NewDiscountPricing(percentage float64) *DiscountPricing {
	return &DiscountPricing{percentage: percentage}
}

// Percentage returns the current discount percentage.
func (p *DiscountPricing) Percentage() float64 {
	return p.percentage
}

// SetPercentage replaces the discount percentage. No bounds check is performed.
func (p *DiscountPricing) SetPercentage(percentage float64) {
	p.percentage = percentage
}

// CalculatePrice returns (price + delivery cost) reduced by the percentage.
func (p *DiscountPricing) CalculatePrice(o *order.Order) float64 {
	return (o.Price() + o.DeliveryCost()) * (1 - p.percentage/100)
}

// PremiumPricing quotes the standard total plus a flat service fee.
type PremiumPricing struct {
	serviceFee float64
}

// NewPremiumPricing creates a premium pricing policy with the given flat fee.
func NewPremiumPricing(serviceFee float64) *PremiumPricing {
	return &PremiumPricing{serviceFee: serviceFee}
}

// ServiceFee returns the current flat service fee.
func (p *PremiumPricing) ServiceFee() float64 {
	return p.serviceFee
}

// SetServiceFee replaces the flat service fee.
func (p *PremiumPricing) SetServiceFee(serviceFee float64) {
	p.serviceFee = serviceFee
}

// CalculatePrice returns price plus delivery cost plus the service fee.
func (p *PremiumPricing) CalculatePrice(o *order.Order) float64 {
	return o.Price() + o.DeliveryCost() + p.serviceFee
}
