// Package driver contains the Driver aggregate: a delivery driver with a
// name, a vehicle and an availability state that flips as deliveries are
// started and completed.
package driver
