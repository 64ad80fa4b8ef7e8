package gateway

import (
	"context"
	"encoding/json"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// PublishRideEvent publishes a lifecycle event on the given subject.
func (g *RideGW) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}

// PublishPanicAlert publishes a panic alert for the escalation path.
func (g *RideGW) PublishPanicAlert(ctx context.Context, alert models.PanicAlert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectRidePanic, data)
}
