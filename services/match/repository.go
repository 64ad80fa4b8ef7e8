package match

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// MatchRepo defines the read model the matcher works against
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match MatchRepo
type MatchRepo interface {
	// GetActiveDriversToday returns every driver whose daily log for the
	// given date has active = true, joined with the vehicle spec and the
	// accumulated active seconds. Drivers with no log today are absent.
	GetActiveDriversToday(ctx context.Context, day time.Time) ([]models.DriverCandidate, error)

	// GetPlannedRides returns the ORDERED, SCHEDULED and ONGOING rides
	// (routes included) assigned to any of the given drivers.
	GetPlannedRides(ctx context.Context, driverIDs []uuid.UUID) ([]models.Ride, error)

	// GetDriverLocations resolves the live vehicle positions of the given
	// drivers from the location pool. Drivers without a known position
	// are absent from the result.
	GetDriverLocations(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]models.Location, error)

	// UpdateDriverLocation records a fresh vehicle position in the
	// location pool.
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
}
