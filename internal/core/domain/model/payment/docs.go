// Package payment contains the payment contract consumed by the fulfillment core
// and its concrete variants (cash, card, online), plus the Receipt issued at
// settlement.
//
// The core only depends on the shared Payment interface: Process, Refund,
// IsSuccessful, Amount, Method, TransactionID. Variant-specific data (received
// cash, masked card number, confirmation email) stays on the concrete types.
package payment
