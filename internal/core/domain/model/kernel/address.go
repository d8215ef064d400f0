package kernel

import "fmt"

// Address is a delivery destination. It is a plain value holder: street, house
// number and city are required for a deliverable address, apartment and postal
// code are optional. Validation is deliberately not performed at construction;
// the delivery dispatcher owns address validation so that orders can carry
// partially filled addresses while they are being composed.
//
// Latitude is reused as a flat distance proxy (in abstract units) for delivery
// cost and time estimation. This is a known simplification, not a geodesic
// calculation.
type Address struct {
	street      string
	houseNumber string
	apartment   string
	city        string
	postalCode  string
	latitude    float64
}

// NewAddress creates an Address. All fields are accepted verbatim.
func NewAddress(street, houseNumber, apartment, city, postalCode string, latitude float64) *Address {
	return &Address{
		street:      street,
		houseNumber: houseNumber,
		apartment:   apartment,
		city:        city,
		postalCode:  postalCode,
		latitude:    latitude,
	}
}

// Street returns the street name.
func (a *Address) Street() string {
	return a.street
}

// HouseNumber returns the house number.
func (a *Address) HouseNumber() string {
	return a.houseNumber
}

// Apartment returns the optional apartment number.
func (a *Address) Apartment() string {
	return a.apartment
}

// City returns the city name.
func (a *Address) City() string {
	return a.city
}

// PostalCode returns the optional postal code.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// Latitude returns the numeric distance proxy used for delivery estimation.
func (a *Address) Latitude() float64 {
	return a.latitude
}

// String returns a single-line human-readable rendering of the address.
func (a *Address) String() string {
	return fmt.Sprintf("%s %s, %s", a.street, a.houseNumber, a.city)
}
