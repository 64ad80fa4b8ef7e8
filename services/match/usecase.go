package match

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// MatchUC defines the interface for dispatch matching business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match MatchUC
type MatchUC interface {
	// FindDriverForRide selects one eligible driver for the request, or
	// fails with ErrNoSuitableDrivers when nobody qualifies.
	FindDriverForRide(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)
}
