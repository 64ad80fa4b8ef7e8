package gateway

import (
	"context"
	"encoding/json"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers"
)

// DriverGW handles NATS publishing for driver events
type DriverGW struct {
	natsClient *natspkg.Client
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(client *natspkg.Client) drivers.DriverGW {
	return &DriverGW{natsClient: client}
}

// PublishShiftEvent publishes a clock-in or clock-out to NATS
func (g *DriverGW) PublishShiftEvent(ctx context.Context, event models.ShiftEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDriverShift, data)
}

// PublishLocationUpdate publishes a fresh vehicle position to NATS
func (g *DriverGW) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDriverLocation, data)
}
