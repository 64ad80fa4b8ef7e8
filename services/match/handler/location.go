package handler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
)

// LocationWriter is the slice of the match repository the consumer needs.
type LocationWriter interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
}

// LocationConsumer keeps the live driver-location pool current from the
// external vehicle feed published on NATS.
type LocationConsumer struct {
	natsClient *natspkg.Client
	locations  LocationWriter
	log        *logger.ZapLogger
}

// NewLocationConsumer creates a new location consumer
func NewLocationConsumer(natsClient *natspkg.Client, locations LocationWriter, log *logger.ZapLogger) *LocationConsumer {
	return &LocationConsumer{
		natsClient: natsClient,
		locations:  locations,
		log:        log,
	}
}

// Init subscribes to the driver location subject
func (c *LocationConsumer) Init() error {
	_, err := c.natsClient.QueueSubscribe(constants.SubjectDriverLocation, "match-service", c.handleLocationUpdate)
	return err
}

func (c *LocationConsumer) handleLocationUpdate(msg *nats.Msg) {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		c.log.Warn("failed to unmarshal driver location update", logger.Err(err))
		return
	}
	if err := c.locations.UpdateDriverLocation(context.Background(), update.DriverID, update.Location); err != nil {
		c.log.Warn("failed to store driver location",
			logger.String("driver_id", update.DriverID.String()),
			logger.Err(err))
	}
}
