package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// RideRepo defines the interface for ride persistence. Every status
// transition is compare-and-swap guarded: the UPDATE names the expected
// current status, and zero affected rows means a concurrent transition
// won.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides RideRepo
type RideRepo interface {
	// CreateRide persists the ride with its route, stops and passenger
	// list in one transaction. The transaction re-verifies that the
	// assigned driver holds no conflicting planned ride and fails with
	// ErrDriverConflict when the match has gone stale.
	CreateRide(ctx context.Context, ride *models.Ride) error

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// GetOngoingRideByDriver returns the driver's ONGOING ride, or
	// ErrRideNotFound.
	GetOngoingRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)

	// GetCurrentRideByUser returns the user's most recent non-terminal
	// ride, whether they ride as driver or passenger.
	GetCurrentRideByUser(ctx context.Context, userID uuid.UUID) (*models.Ride, error)

	// MarkStarted moves the ride from the given status to ONGOING and
	// sets start_time.
	MarkStarted(ctx context.Context, rideID uuid.UUID, from models.RideStatus, at time.Time) error

	// MarkCompleted moves the ride from ONGOING to COMPLETED and sets
	// end_time unless a stop already set it.
	MarkCompleted(ctx context.Context, rideID uuid.UUID, at time.Time) error

	// MarkCancelled moves the ride from the given status to CANCELLED
	// and records the reason.
	MarkCancelled(ctx context.Context, rideID uuid.UUID, from models.RideStatus, reason string) error

	// StopRide commits the whole early-stop mutation in one transaction:
	// status ONGOING to STOPPED, end_time, price, and the rewritten
	// route with its new stop list.
	StopRide(ctx context.Context, ride *models.Ride) error

	// AppendPanicEvent inserts a panic event row. Events are append-only.
	AppendPanicEvent(ctx context.Context, event *models.PanicEvent) error
}
