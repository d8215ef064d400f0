// Package kernel contains the shared value objects and primitives used across the
// fulfillment domain model.
//
// The package provides:
//   - Sequence: an injectable allocator for prefixed, monotonically increasing
//     identifiers (order ids, receipt numbers)
//   - Address: a delivery destination carrying a numeric distance proxy
//   - Discount: a validated percentage value object
//
// Kernel types depend only on the shared error and guard infrastructure, never on
// other domain packages.
package kernel
