package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	wspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/websocket"
)

// MatchConsumer forwards dispatch results from NATS to the assigned
// driver's WebSocket connection, if they have one open.
type MatchConsumer struct {
	natsClient *natspkg.Client
	manager    *wspkg.Manager
}

// NewMatchConsumer creates a new match consumer
func NewMatchConsumer(natsClient *natspkg.Client, manager *wspkg.Manager) *MatchConsumer {
	return &MatchConsumer{
		natsClient: natsClient,
		manager:    manager,
	}
}

// Init subscribes to the match result subject
func (c *MatchConsumer) Init() error {
	_, err := c.natsClient.QueueSubscribe(constants.SubjectMatchFound, "drivers-service", c.handleMatchFound)
	return err
}

func (c *MatchConsumer) handleMatchFound(msg *nats.Msg) {
	var result models.MatchResult
	if err := json.Unmarshal(msg.Data, &result); err != nil {
		return
	}
	c.manager.Notify(result.DriverID, wspkg.EventMatchFound, result)
}
