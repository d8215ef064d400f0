// Package payments drives payment validation and settlement: it checks an offered
// payment against an order's final price, runs gateway processing, issues receipts
// and computes the tax and service-fee helper amounts.
package payments

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
)

const (
	// taxRate is the flat tax applied by the Tax helper.
	taxRate = 0.13
	// serviceFeeRate is the flat rate applied by the ServiceFee helper.
	serviceFeeRate = 0.05
)

var (
	// ErrInsufficientPaymentAmount is returned when the offered amount does not
	// cover the order's final price.
	ErrInsufficientPaymentAmount = errors.New("payment amount is insufficient")

	// ErrPaymentProcessingFailed is returned when the payment gateway reports a
	// processing failure.
	ErrPaymentProcessingFailed = errors.New("payment processing failed")

	// ErrRefundNotAllowed is returned when a refund is attempted on a payment
	// that is not successful.
	ErrRefundNotAllowed = errors.New("refund is not allowed for an unsuccessful payment")

	// ErrReceiptSequenceIsRequired is returned when attempting to create a
	// processor without a receipt number allocator.
	ErrReceiptSequenceIsRequired = errs.NewValueIsRequiredError("receipt sequence")

	// ErrOrderIsRequired is returned when processing a payment without an order.
	ErrOrderIsRequired = errs.NewValueIsRequiredError("order")

	// ErrPaymentIsRequired is returned when processing or refunding without a payment.
	ErrPaymentIsRequired = errs.NewValueIsRequiredError("payment")
)

// PaymentProcessor validates payments against orders and drives settlement.
// Its only state is the allocator for the "RCP-" receipt id-space, which is
// independent from the order id-space.
//
// Every failure is surfaced to the caller exactly once: no retry, no partial
// settlement, no swallowed error.
type PaymentProcessor struct {
	// receipts allocates receipt numbers
	receipts *kernel.Sequence
}

// NewPaymentProcessor creates a processor issuing receipt numbers from the
// given sequence.
//
// Returns ErrReceiptSequenceIsRequired if the sequence is nil.
func NewPaymentProcessor(receipts *kernel.Sequence) (*PaymentProcessor, error) {
	if receipts == nil {
		return nil, ErrReceiptSequenceIsRequired
	}

	return &PaymentProcessor{receipts: receipts}, nil
}

// ProcessPayment settles an order with the given payment.
//
// The settlement sequence is strict:
//  1. An amount below the order's final price fails with
//     ErrInsufficientPaymentAmount before anything is mutated.
//  2. A gateway failure from payment.Process fails with
//     ErrPaymentProcessingFailed; the order is never touched in this branch.
//  3. Otherwise the order is settled, the next receipt number is allocated and
//     a Receipt binding (number, order, payment) is returned.
func (p *PaymentProcessor) ProcessPayment(o *order.Order, pay payment.Payment) (*payment.Receipt, error) {
	if o == nil {
		return nil, ErrOrderIsRequired
	}
	if pay == nil {
		return nil, ErrPaymentIsRequired
	}

	if pay.Amount() < o.FinalPrice() {
		return nil, ErrInsufficientPaymentAmount
	}

	if !pay.Process() {
		return nil, ErrPaymentProcessingFailed
	}

	o.ProcessPayment(pay.Amount())

	return payment.NewReceipt(p.receipts.Next(), o, pay)
}

// RefundPayment reverses a settled payment.
//
// Returns ErrRefundNotAllowed when the payment is not successful. Otherwise the
// refund is delegated to the payment itself, whose contract flips its success
// flag to false.
func (p *PaymentProcessor) RefundPayment(pay payment.Payment) error {
	if pay == nil {
		return ErrPaymentIsRequired
	}

	if !pay.IsSuccessful() {
		return ErrRefundNotAllowed
	}

	pay.Refund()
	return nil
}

// Tax returns the tax portion for the given amount. Pure helper, usable
// independently of order processing.
func (p *PaymentProcessor) Tax(amount float64) float64 {
	return amount * taxRate
}

// ServiceFee returns the service-fee portion for the given amount. Pure helper,
// usable independently of order processing.
func (p *PaymentProcessor) ServiceFee(amount float64) float64 {
	return amount * serviceFeeRate
}
