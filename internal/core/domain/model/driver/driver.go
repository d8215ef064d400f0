package driver

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the system.
// A driver is either available or out on a delivery; the dispatcher flips the
// state through StartDelivery and CompleteDelivery and never hands a driver
// more than one delivery at a time.
type Driver struct {
	// name is the human-readable name of the driver
	name string
	// vehicle is what the driver rides
	vehicle Vehicle
	// busy is true while the driver is out on a delivery
	busy bool
	// completedDeliveries counts deliveries the driver has finished
	completedDeliveries int
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified name and vehicle.
// The driver starts out available with no completed deliveries.
func NewDriver(name string, vehicle Vehicle) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setName(name),
		driver.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate checks if the Driver was properly constructed using the NewDriver constructor.
// The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Vehicle returns what the driver rides.
func (d *Driver) Vehicle() Vehicle {
	return d.vehicle
}

// CompletedDeliveries returns how many deliveries the driver has finished.
func (d *Driver) CompletedDeliveries() int {
	return d.completedDeliveries
}

// IsAvailable reports whether the driver can take a delivery.
func (d *Driver) IsAvailable() bool {
	return !d.busy
}

// StartDelivery marks the driver as out on a delivery.
func (d *Driver) StartDelivery() {
	d.busy = true
}

// CompleteDelivery marks the driver as available again. A delivery that was
// actually in progress counts toward the completed total.
func (d *Driver) CompleteDelivery() {
	if d.busy {
		d.completedDeliveries++
	}
	d.busy = false
}

// setName sets the driver's name with validation.
// This is an internal setter used during driver construction.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

// setVehicle sets the driver's vehicle with validation.
// This is an internal setter used during driver construction.
func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	d.vehicle = vehicle
	return nil
}
