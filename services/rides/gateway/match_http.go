package gateway

import (
	"context"
	"errors"
	"net/http"

	httppkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/http"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// RequestMatch asks the match service for a driver. The match service
// answers 404 when no driver qualifies; that maps back to
// match.ErrNoSuitableDrivers so ordering propagates it unchanged.
func (g *RideGW) RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	var result models.MatchResult
	err := g.matchCB.Execute(ctx, func(ctx context.Context) error {
		return g.matchClient.PostJSON(ctx, "/internal/matches", req, &result)
	})
	if err != nil {
		var statusErr *httppkg.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, match.ErrNoSuitableDrivers
		}
		return nil, err
	}
	return &result, nil
}
