package cmd

type Config struct {
	HTTPPort string
	// Drivers seeds the dispatcher pool, e.g. "Alice:CAR,Bob:SCOOTER".
	// A name without a vehicle defaults to CAR. Empty means no seeded drivers.
	Drivers string
}
