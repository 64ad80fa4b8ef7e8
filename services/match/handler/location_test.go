package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

type stubLocationWriter struct {
	driverID uuid.UUID
	location models.Location
	calls    int
	err      error
}

func (s *stubLocationWriter) UpdateDriverLocation(_ context.Context, driverID uuid.UUID, location models.Location) error {
	s.calls++
	s.driverID = driverID
	s.location = location
	return s.err
}

func marshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return data
}

func TestLocationConsumer_HandleLocationUpdate(t *testing.T) {
	writer := &stubLocationWriter{}
	consumer := NewLocationConsumer(nil, writer, logger.NewNopLogger())

	driverID := uuid.New()
	update := models.LocationUpdate{
		DriverID: driverID,
		Location: models.Location{Latitude: 44.8125, Longitude: 20.4612},
	}

	consumer.handleLocationUpdate(&nats.Msg{Data: marshal(t, update)})

	assert.Equal(t, 1, writer.calls)
	assert.Equal(t, driverID, writer.driverID)
	assert.Equal(t, update.Location, writer.location)
}

func TestLocationConsumer_HandleLocationUpdate_WriteFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	writer := &stubLocationWriter{err: assert.AnError}
	consumer := NewLocationConsumer(nil, writer, &logger.ZapLogger{Logger: zap.New(core)})

	update := models.LocationUpdate{
		DriverID: uuid.New(),
		Location: models.Location{Latitude: 44.8125, Longitude: 20.4612},
	}

	consumer.handleLocationUpdate(&nats.Msg{Data: marshal(t, update)})

	assert.Equal(t, 1, writer.calls)
	entries := logs.FilterMessage("failed to store driver location").All()
	assert.Len(t, entries, 1)
}

func TestLocationConsumer_HandleLocationUpdate_BadPayload(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	writer := &stubLocationWriter{}
	consumer := NewLocationConsumer(nil, writer, &logger.ZapLogger{Logger: zap.New(core)})

	consumer.handleLocationUpdate(&nats.Msg{Data: []byte("not json")})

	assert.Equal(t, 0, writer.calls)
	entries := logs.FilterMessage("failed to unmarshal driver location update").All()
	assert.Len(t, entries, 1)
}
