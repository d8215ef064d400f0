package payment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not created
	// through the NewReceipt factory method.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")

	// ErrReceiptNumberIsRequired is returned when attempting to create a receipt
	// without a number.
	ErrReceiptNumberIsRequired = errs.NewValueIsRequiredError("receipt number")

	// ErrReceiptOrderIsRequired is returned when attempting to create a receipt
	// without an order.
	ErrReceiptOrderIsRequired = errs.NewValueIsRequiredError("order")

	// ErrReceiptPaymentIsRequired is returned when attempting to create a receipt
	// without a payment.
	ErrReceiptPaymentIsRequired = errs.NewValueIsRequiredError("payment")
)

// Receipt is the immutable record binding a receipt number to an order and the
// payment that settled it. Issued by the payment processor at settlement time;
// never mutated afterwards.
type Receipt struct {
	number   string
	order    *order.Order
	payment  Payment
	issuedAt time.Time

	guard guard.ConstructorGuard
}

// NewReceipt creates a Receipt binding the given number, order and payment.
//
// All three are required; a missing one fails with the matching value error.
func NewReceipt(number string, o *order.Order, p Payment) (*Receipt, error) {
	if number == "" {
		return nil, ErrReceiptNumberIsRequired
	}
	if o == nil {
		return nil, ErrReceiptOrderIsRequired
	}
	if p == nil {
		return nil, ErrReceiptPaymentIsRequired
	}

	return &Receipt{
		number:   number,
		order:    o,
		payment:  p,
		issuedAt: time.Now(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Receipt was created through NewReceipt.
func (r *Receipt) Validate() error {
	if r == nil {
		return ErrReceiptIsNotConstructed
	}
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}

// Number returns the receipt number ("RCP-" followed by a sequential integer).
func (r *Receipt) Number() string {
	return r.number
}

// Order returns the settled order.
func (r *Receipt) Order() *order.Order {
	return r.order
}

// Payment returns the payment that settled the order.
func (r *Receipt) Payment() Payment {
	return r.payment
}

// IssuedAt returns the settlement timestamp.
func (r *Receipt) IssuedAt() time.Time {
	return r.issuedAt
}

// String returns a one-line summary for downstream reporting.
func (r *Receipt) String() string {
	return fmt.Sprintf("%s: order %s paid %.2f by %s",
		r.number, r.order.ID(), r.payment.Amount(), r.payment.Method())
}
