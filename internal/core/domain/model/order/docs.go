// Package order contains the Order aggregate and its parts: line items, the
// lifecycle status enumeration and the collaborator contracts (Product, Customer)
// the aggregate consumes.
//
// The aggregate owns every financial calculation in the fulfillment core: item
// totals, delivery cost and time estimation, discount application and the final
// price used by payment settlement. Other components (registry, payment processor,
// delivery dispatcher) build on these calculations rather than reimplementing them.
package order
