// Package delivery contains the Assignment entity binding one order to one driver
// for a delivery run, and the Driver contract the dispatcher consumes.
//
// Driver management (shifts, vehicles, profiles) lives outside the fulfillment
// core; dispatch only needs availability and the start/complete signals.
package delivery
