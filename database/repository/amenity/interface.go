package amenityRepo

import (
	"context"

	"cityconnect/models"
)

// AmenityRepository is read-only reference data: amenity flags and coordinates per park.
type AmenityRepository interface {
	Amenities(ctx context.Context) (models.AmenityTable, error)
	Locations(ctx context.Context) ([]models.ParkLocation, error)
}
