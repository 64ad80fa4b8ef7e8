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

// GetDriverLocations resolves the live vehicle positions of the given
// drivers from the redis geo pool. Drivers that never reported a
// position are simply absent from the result.
func (r *MatchRepo) GetDriverLocations(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]models.Location, error) {
	if len(driverIDs) == 0 {
		return map[uuid.UUID]models.Location{}, nil
	}

	members := make([]string, len(driverIDs))
	for i, id := range driverIDs {
		members[i] = id.String()
	}

	positions, err := r.redisClient.GeoPos(ctx, constants.KeyDriverGeo, members...)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver locations: %w", err)
	}

	locations := make(map[uuid.UUID]models.Location, len(driverIDs))
	for i, pos := range positions {
		if pos == nil {
			continue
		}
		locations[driverIDs[i]] = models.Location{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}
	}

	return locations, nil
}

// UpdateDriverLocation records a fresh vehicle position in the geo pool
// and keeps the per-driver geohash in sync for coarse lookups.
func (r *MatchRepo) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
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
