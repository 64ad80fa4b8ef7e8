package match

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// MatchGW defines the interface for match gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match MatchGW
type MatchGW interface {
	PublishMatchFound(ctx context.Context, result models.MatchResult) error
	PublishMatchFailed(ctx context.Context, req models.MatchRequest) error
}
