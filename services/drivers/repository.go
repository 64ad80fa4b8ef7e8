package drivers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// DriverRepo defines the interface for driver shift persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers DriverRepo
type DriverRepo interface {
	// GetDailyLog returns the driver's log for the given day. The second
	// return value is false when no row exists yet.
	GetDailyLog(ctx context.Context, driverID uuid.UUID, day time.Time) (*models.DriverDailyLog, bool, error)

	// SaveDailyLog upserts the log row keyed by (driver_id, log_date).
	SaveDailyLog(ctx context.Context, log *models.DriverDailyLog) error

	// UpdateDriverLocation writes the driver's live position to the
	// shared geo pool.
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
}
