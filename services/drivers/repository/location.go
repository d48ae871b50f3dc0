package repository

import (
	"context"
	"fmt"

	"github.com/gebeta-delivery/gebeta/internal/pkg/constants"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// AddAvailableDriver records the driver's last known location in the geo pool
func (r *DriverRepo) AddAvailableDriver(ctx context.Context, driverID string, location *models.Location) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to add driver to geo pool: %w", err)
	}
	return nil
}

// RemoveAvailableDriver drops the driver from the geo pool
func (r *DriverRepo) RemoveAvailableDriver(ctx context.Context, driverID string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo pool: %w", err)
	}
	return nil
}

// FindNearbyDrivers returns drivers within radiusKm of the location, nearest
// first. Results reflect last reported positions; eligibility is re-verified
// against Postgres at reservation time.
func (r *DriverRepo) FindNearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search driver geo pool: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		drivers = append(drivers, models.NearbyDriver{
			DriverID:   loc.Name,
			DistanceKm: loc.Dist,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
		})
	}
	return drivers, nil
}
