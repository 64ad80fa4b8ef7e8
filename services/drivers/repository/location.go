package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
)

const (
	geohashPrecision = 7
	locationTTL      = 10 * time.Minute
)

// UpdateDriverLocation records a fresh vehicle position in the shared
// geo pool the matcher reads from.
func (r *DriverRepo) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	member := driverID.String()
	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, member); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	hash := utils.EncodeLocation(location, geohashPrecision)
	key := fmt.Sprintf(constants.KeyDriverGeohash, member)
	if err := r.redisClient.Set(ctx, key, hash, locationTTL); err != nil {
		return fmt.Errorf("failed to update driver geohash: %w", err)
	}
	return nil
}
