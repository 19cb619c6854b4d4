package vehicle_test

import (
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/lookup/vehicle"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[string]string{
		"Passenger Car":                        vehicle.CategoryCar,
		"Motorcycle":                           vehicle.CategoryBike,
		"Off Road Bike":                        vehicle.CategoryBike,
		"Bus":                                  vehicle.CategoryBus,
		"Truck ":                               vehicle.CategoryTruck,
		"Van":                                  vehicle.CategoryVan,
		"Multipurpose Passenger Vehicle (MPV)": vehicle.CategoryUnknown,
		"":                                     vehicle.CategoryUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, vehicle.Classify(in), in)
	}
}

func TestIsCommercial(t *testing.T) {
	assert.True(t, vehicle.IsCommercial(vehicle.CategoryTruck))
	assert.True(t, vehicle.IsCommercial(vehicle.CategoryBus))
	assert.True(t, vehicle.IsCommercial(vehicle.CategoryVan))
	assert.False(t, vehicle.IsCommercial(vehicle.CategoryCar))
	assert.False(t, vehicle.IsCommercial(vehicle.CategoryUnknown))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "vehicle:models:toyota", vehicle.CacheKey(" Toyota "))
}
