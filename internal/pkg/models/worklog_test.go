package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

var logNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

func TestDriverDailyLog_Apply(t *testing.T) {
	driverID := uuid.New()

	t.Run("activate opens an interval", func(t *testing.T) {
		log := models.NewDailyLog(driverID, logNow)

		log = log.Apply(models.ShiftActivate, logNow)

		assert.True(t, log.Active)
		assert.Equal(t, logNow, *log.LastActivationAt)
		assert.Zero(t, log.ActiveSeconds)
	})

	t.Run("repeated activate keeps the original interval", func(t *testing.T) {
		log := models.NewDailyLog(driverID, logNow)
		log = log.Apply(models.ShiftActivate, logNow)

		log = log.Apply(models.ShiftActivate, logNow.Add(30*time.Minute))

		assert.Equal(t, logNow, *log.LastActivationAt)
	})

	t.Run("deactivate accumulates the interval", func(t *testing.T) {
		log := models.NewDailyLog(driverID, logNow)
		log = log.Apply(models.ShiftActivate, logNow)

		log = log.Apply(models.ShiftDeactivate, logNow.Add(90*time.Minute))

		assert.False(t, log.Active)
		assert.Nil(t, log.LastActivationAt)
		assert.Equal(t, int64(90*60), log.ActiveSeconds)
	})

	t.Run("deactivate while inactive is a no-op", func(t *testing.T) {
		log := models.NewDailyLog(driverID, logNow)

		log = log.Apply(models.ShiftDeactivate, logNow)

		assert.False(t, log.Active)
		assert.Zero(t, log.ActiveSeconds)
	})

	t.Run("intervals accumulate across the day", func(t *testing.T) {
		log := models.NewDailyLog(driverID, logNow)
		log = log.Apply(models.ShiftActivate, logNow)
		log = log.Apply(models.ShiftDeactivate, logNow.Add(1*time.Hour))
		log = log.Apply(models.ShiftActivate, logNow.Add(3*time.Hour))
		log = log.Apply(models.ShiftDeactivate, logNow.Add(5*time.Hour))

		assert.Equal(t, int64(3*3600), log.ActiveSeconds)
	})
}

func TestDriverDailyLog_WorkedSeconds(t *testing.T) {
	driverID := uuid.New()

	t.Run("counts the open interval while active", func(t *testing.T) {
		log := models.DriverDailyLog{DriverID: driverID, ActiveSeconds: 1800}
		log = log.Apply(models.ShiftActivate, logNow)

		assert.Equal(t, int64(1800+20*60), log.WorkedSeconds(logNow.Add(20*time.Minute)))
	})

	t.Run("closed log reports stored seconds", func(t *testing.T) {
		log := models.DriverDailyLog{DriverID: driverID, ActiveSeconds: 1800}

		assert.Equal(t, int64(1800), log.WorkedSeconds(logNow))
	})
}

func TestDriverDailyLog_Eligible(t *testing.T) {
	cap := 8 * time.Hour

	tests := []struct {
		name string
		log  models.DriverDailyLog
		want bool
	}{
		{"active under cap", models.DriverDailyLog{Active: true, ActiveSeconds: 7*3600 + 3599}, true},
		{"active at cap", models.DriverDailyLog{Active: true, ActiveSeconds: 8 * 3600}, false},
		{"active above cap", models.DriverDailyLog{Active: true, ActiveSeconds: 9 * 3600}, false},
		{"inactive under cap", models.DriverDailyLog{Active: false, ActiveSeconds: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.log.Eligible(cap))
		})
	}
}

func TestDateOf(t *testing.T) {
	in := time.Date(2024, 5, 10, 23, 59, 59, 0, time.FixedZone("CET", 3600))

	got := models.DateOf(in)

	// 23:59 CET is 22:59 UTC, still May 10th.
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), got)
}
