package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNewAddress(t *testing.T) {
	t.Run("should hold all fields verbatim", func(t *testing.T) {
		address := kernel.NewAddress("Baker Street", "221B", "4", "London", "NW1 6XE", 2.5)

		assert.Equal(t, "Baker Street", address.Street())
		assert.Equal(t, "221B", address.HouseNumber())
		assert.Equal(t, "4", address.Apartment())
		assert.Equal(t, "London", address.City())
		assert.Equal(t, "NW1 6XE", address.PostalCode())
		assert.InDelta(t, 2.5, address.Latitude(), 0.0001)
	})

	t.Run("should accept blank fields without error", func(t *testing.T) {
		// Construction is permissive; the dispatcher owns validation
		address := kernel.NewAddress("", "", "", "", "", 0)

		assert.NotNil(t, address)
		assert.Empty(t, address.Street())
	})
}

func TestAddress_String(t *testing.T) {
	t.Run("should render street, house number and city", func(t *testing.T) {
		address := kernel.NewAddress("Baker Street", "221B", "", "London", "", 1)

		assert.Equal(t, "Baker Street 221B, London", address.String())
	})
}
