package drivers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// DriverUC defines the interface for driver shift and location logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers DriverUC
type DriverUC interface {
	// Activate clocks the driver in for today. Activating an already
	// active driver is a no-op.
	Activate(ctx context.Context, driverID uuid.UUID) (*models.DriverDailyLog, error)

	// Deactivate clocks the driver out and accumulates the elapsed
	// interval. Deactivating an inactive driver is a no-op.
	Deactivate(ctx context.Context, driverID uuid.UUID) (*models.DriverDailyLog, error)

	// IsEligibleToday reports whether the driver is clocked in and still
	// under the daily work-time cap. No log today means not eligible.
	IsEligibleToday(ctx context.Context, driverID uuid.UUID) (bool, error)

	// WorkedToday returns the time the driver has worked today, counting
	// the open interval when currently clocked in.
	WorkedToday(ctx context.Context, driverID uuid.UUID) (time.Duration, error)

	// UpdateLocation feeds a new vehicle position into the live location
	// pool and publishes it for the matcher.
	UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
}
