// Package services contains stateless domain services of the fulfillment core.
//
// The pricing strategies live here: interchangeable policies that compute a quoted
// total from an order's base price and delivery cost without mutating the order.
// Callers hold a strategy value and swap it per quote; strategies carry no
// order-specific state.
package services
