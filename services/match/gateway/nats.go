package gateway

import (
	"context"
	"encoding/json"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// MatchGW handles NATS publishing for match events
type MatchGW struct {
	natsClient *natspkg.Client
}

// NewMatchGW creates a new match gateway
func NewMatchGW(client *natspkg.Client) match.MatchGW {
	return &MatchGW{natsClient: client}
}

// PublishMatchFound publishes a successful match to NATS
func (g *MatchGW) PublishMatchFound(ctx context.Context, result models.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectMatchFound, data)
}

// PublishMatchFailed publishes an exhausted match attempt to NATS
func (g *MatchGW) PublishMatchFailed(ctx context.Context, req models.MatchRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectMatchFailed, data)
}
