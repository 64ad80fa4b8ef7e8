package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

func TestRideStatus_Terminal(t *testing.T) {
	assert.False(t, models.RideStatusOrdered.Terminal())
	assert.False(t, models.RideStatusScheduled.Terminal())
	assert.False(t, models.RideStatusOngoing.Terminal())
	assert.True(t, models.RideStatusStopped.Terminal())
	assert.True(t, models.RideStatusCompleted.Terminal())
	assert.True(t, models.RideStatusCancelled.Terminal())
	assert.True(t, models.RideStatusPanic.Terminal())
}

func TestRide_EstimatedEnd(t *testing.T) {
	started := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	ride := models.Ride{
		StartTime: &started,
		Route:     models.Route{EstimatedTimeSeconds: 900},
	}

	end, ok := ride.EstimatedEnd()
	assert.True(t, ok)
	assert.Equal(t, started.Add(15*time.Minute), end)

	_, ok = (&models.Ride{}).EstimatedEnd()
	assert.False(t, ok)
}

func TestRide_OccupiedWindow(t *testing.T) {
	buffer := 5 * time.Minute
	anchor := time.Date(2024, 5, 10, 16, 0, 0, 0, time.UTC)

	t.Run("scheduled ride anchors at scheduled_for", func(t *testing.T) {
		ride := models.Ride{
			ScheduledFor: &anchor,
			Route:        models.Route{EstimatedTimeSeconds: 1800},
		}

		from, to, ok := ride.OccupiedWindow(buffer)
		assert.True(t, ok)
		assert.Equal(t, anchor.Add(-buffer), from)
		assert.Equal(t, anchor.Add(30*time.Minute).Add(buffer), to)
	})

	t.Run("started ride anchors at start_time", func(t *testing.T) {
		scheduled := anchor.Add(-10 * time.Minute)
		ride := models.Ride{
			ScheduledFor: &scheduled,
			StartTime:    &anchor,
			Route:        models.Route{EstimatedTimeSeconds: 1800},
		}

		from, _, ok := ride.OccupiedWindow(buffer)
		assert.True(t, ok)
		assert.Equal(t, anchor.Add(-buffer), from)
	})

	t.Run("no anchor means no window", func(t *testing.T) {
		_, _, ok := (&models.Ride{}).OccupiedWindow(buffer)
		assert.False(t, ok)
	})
}

func TestRide_Participants(t *testing.T) {
	driverID := uuid.New()
	main := uuid.New()
	other := uuid.New()
	ride := models.Ride{
		DriverID:     &driverID,
		PassengerIDs: []uuid.UUID{main, other},
	}

	assert.Equal(t, main, ride.MainPassenger())
	assert.True(t, ride.HasPassenger(other))
	assert.False(t, ride.HasPassenger(uuid.New()))
	assert.True(t, ride.BelongsToDriver(driverID))
	assert.False(t, ride.BelongsToDriver(uuid.New()))
}

func TestRoute_Stops(t *testing.T) {
	pickup := models.Stop{Address: "Bulevar kralja Aleksandra 73"}
	mid := models.Stop{Address: "Takovska 2"}
	dest := models.Stop{Address: "Knez Mihailova 6"}

	full := models.Route{Stops: []models.Stop{pickup, mid, dest}}
	assert.Equal(t, pickup, full.Pickup())
	assert.Equal(t, dest, full.Destination())
	assert.Equal(t, []models.Stop{mid}, full.Waypoints())
	assert.True(t, full.Valid())

	direct := models.Route{Stops: []models.Stop{pickup, dest}}
	assert.Nil(t, direct.Waypoints())

	assert.False(t, (&models.Route{Stops: []models.Stop{pickup}}).Valid())
}
