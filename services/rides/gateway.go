package rides

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// RideGW defines the interface for the ride service's outbound calls:
// the match service, the routing/geocoding provider and the NATS
// lifecycle events.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides RideGW
type RideGW interface {
	// RequestMatch asks the match service for a driver. An exhausted
	// match surfaces as match.ErrNoSuitableDrivers.
	RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)

	// ReverseGeocode resolves a location to a display address.
	ReverseGeocode(ctx context.Context, location models.Location) (string, error)

	// RecomputeRoute routes through the given stops in order and returns
	// the combined leg.
	RecomputeRoute(ctx context.Context, stops []models.Stop) (*models.RouteLeg, error)

	PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error
	PublishPanicAlert(ctx context.Context, alert models.PanicAlert) error
}
