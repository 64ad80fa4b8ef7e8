package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// RideUC defines the interface for ride lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides RideUC
type RideUC interface {
	// OrderRide matches a driver for the request and creates the ride.
	// Matching failures propagate unchanged; a driver that gained a
	// conflicting ride between match and commit surfaces as
	// ErrDriverConflict.
	OrderRide(ctx context.Context, req models.RideRequest) (*models.Ride, error)

	// StartRide is the driver-acceptance trigger: it moves the ride to
	// ONGOING and stamps the start time.
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)

	// StopRide ends the driver's ongoing ride early at the given
	// location, rewrites the route and reprices from the new distance.
	StopRide(ctx context.Context, driverID uuid.UUID, location models.Location) (float64, error)

	// CancelRide cancels the actor's current ride with a reason. Only
	// the assigned driver or one of the passengers may cancel.
	CancelRide(ctx context.Context, actor models.Actor, reason string) error

	// CompleteRide finishes an ongoing ride at its destination.
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) error

	// PanicRide records an emergency on an ongoing ride. The ride keeps
	// running; escalation happens downstream of the published alert.
	PanicRide(ctx context.Context, rideID uuid.UUID, actor models.Actor, location models.Location) error

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
}
