package driver

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Vehicle tags what a driver rides.
type Vehicle int

const (
	// VehicleUnknown represents an invalid or undefined vehicle.
	// This value (0) helps catch uninitialized Vehicle values.
	VehicleUnknown Vehicle = iota

	// Bicycle is a pedal bicycle, suited to short urban runs.
	Bicycle

	// Scooter is a motor scooter.
	Scooter

	// Car is a passenger car, suited to longer runs.
	Car
)

// getVehicleStrings returns a map of Vehicle values to their string representations.
func getVehicleStrings() map[Vehicle]string {
	return map[Vehicle]string{
		VehicleUnknown: "UNKNOWN",
		Bicycle:        "BICYCLE",
		Scooter:        "SCOOTER",
		Car:            "CAR",
	}
}

// getValidVehicleStrings returns a map of only valid Vehicle values.
func getValidVehicleStrings() map[Vehicle]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[Vehicle]string{
		Bicycle: "BICYCLE",
		Scooter: "SCOOTER",
		Car:     "CAR",
	}
}

// Validate checks if the Vehicle value is one of the known vehicles.
func (v Vehicle) Validate() error {
	if _, ok := getValidVehicleStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle is invalid", fmt.Errorf("%d is not a valid vehicle", v))
	}
	return nil
}

// String returns the tag of the vehicle ("BICYCLE", "SCOOTER", "CAR").
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (v Vehicle) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseVehicle maps a tag such as "CAR" back to its Vehicle value. The tag is
// case-insensitive and surrounding whitespace is ignored.
func ParseVehicle(tag string) (Vehicle, error) {
	normalized := strings.ToUpper(strings.TrimSpace(tag))
	for vehicle, name := range getValidVehicleStrings() {
		if name == normalized {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle is invalid", fmt.Errorf("%q is not a valid vehicle", tag))
}
