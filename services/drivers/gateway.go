package drivers

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// DriverGW defines the interface for driver gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers DriverGW
type DriverGW interface {
	PublishShiftEvent(ctx context.Context, event models.ShiftEvent) error
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
}
