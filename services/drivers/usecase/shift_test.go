package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/mocks"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/usecase"
)

var testNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

func driverConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{WorkTimeCapHours: 8},
	}
}

func newDriverUC(t *testing.T, ctrl *gomock.Controller) (*usecase.DriverUC, *mocks.MockDriverRepo, *mocks.MockDriverGW) {
	t.Helper()
	driverRepo := mocks.NewMockDriverRepo(ctrl)
	driverGW := mocks.NewMockDriverGW(ctrl)
	uc := usecase.NewDriverUC(driverConfig(), driverRepo, driverGW, logger.NewNopLogger()).
		WithClock(func() time.Time { return testNow })
	return uc, driverRepo, driverGW
}

func TestActivate(t *testing.T) {
	driverID := uuid.New()
	today := models.DateOf(testNow)

	t.Run("first activation creates today's log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, driverGW := newDriverUC(t, ctrl)

		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).Return(nil, false, nil)
		driverRepo.EXPECT().SaveDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *models.DriverDailyLog) error {
				assert.Equal(t, driverID, log.DriverID)
				assert.Equal(t, today, log.LogDate)
				assert.True(t, log.Active)
				assert.Equal(t, testNow, *log.LastActivationAt)
				assert.Equal(t, int64(0), log.ActiveSeconds)
				return nil
			})
		driverGW.EXPECT().PublishShiftEvent(gomock.Any(), gomock.Any()).Return(nil)

		log, err := uc.Activate(context.Background(), driverID)

		assert.NoError(t, err)
		assert.True(t, log.Active)
	})

	t.Run("double activation does not reset the interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, driverGW := newDriverUC(t, ctrl)

		earlier := testNow.Add(-30 * time.Minute)
		existing := &models.DriverDailyLog{
			DriverID:         driverID,
			LogDate:          today,
			Active:           true,
			LastActivationAt: &earlier,
		}
		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).Return(existing, true, nil)
		driverRepo.EXPECT().SaveDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *models.DriverDailyLog) error {
				assert.Equal(t, earlier, *log.LastActivationAt)
				return nil
			})
		driverGW.EXPECT().PublishShiftEvent(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Activate(context.Background(), driverID)

		assert.NoError(t, err)
	})
}

func TestDeactivate(t *testing.T) {
	driverID := uuid.New()
	today := models.DateOf(testNow)

	t.Run("deactivation accumulates the open interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, driverGW := newDriverUC(t, ctrl)

		clockIn := testNow.Add(-90 * time.Minute)
		existing := &models.DriverDailyLog{
			DriverID:         driverID,
			LogDate:          today,
			ActiveSeconds:    600,
			Active:           true,
			LastActivationAt: &clockIn,
		}
		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).Return(existing, true, nil)
		driverRepo.EXPECT().SaveDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *models.DriverDailyLog) error {
				assert.False(t, log.Active)
				assert.Nil(t, log.LastActivationAt)
				assert.Equal(t, int64(600+90*60), log.ActiveSeconds)
				return nil
			})
		driverGW.EXPECT().PublishShiftEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event models.ShiftEvent) error {
				assert.Equal(t, models.ShiftDeactivate, event.Action)
				assert.Equal(t, int64(600+90*60), event.ActiveSeconds)
				return nil
			})

		log, err := uc.Deactivate(context.Background(), driverID)

		assert.NoError(t, err)
		assert.False(t, log.Active)
	})

	t.Run("double deactivation is a no-op on the log value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, driverGW := newDriverUC(t, ctrl)

		existing := &models.DriverDailyLog{
			DriverID:      driverID,
			LogDate:       today,
			ActiveSeconds: 3600,
		}
		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).Return(existing, true, nil)
		driverRepo.EXPECT().SaveDailyLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *models.DriverDailyLog) error {
				assert.Equal(t, int64(3600), log.ActiveSeconds)
				assert.False(t, log.Active)
				return nil
			})
		driverGW.EXPECT().PublishShiftEvent(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Deactivate(context.Background(), driverID)

		assert.NoError(t, err)
	})
}

func TestIsEligibleToday(t *testing.T) {
	driverID := uuid.New()
	today := models.DateOf(testNow)

	tests := []struct {
		name string
		log  *models.DriverDailyLog
		want bool
	}{
		{
			name: "active under the cap",
			log:  &models.DriverDailyLog{Active: true, ActiveSeconds: 4 * 3600},
			want: true,
		},
		{
			name: "active at the cap",
			log:  &models.DriverDailyLog{Active: true, ActiveSeconds: 8 * 3600},
			want: false,
		},
		{
			name: "inactive",
			log:  &models.DriverDailyLog{Active: false, ActiveSeconds: 600},
			want: false,
		},
		{
			name: "no log today",
			log:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, driverRepo, _ := newDriverUC(t, ctrl)

			driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).
				Return(tt.log, tt.log != nil, nil)

			eligible, err := uc.IsEligibleToday(context.Background(), driverID)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, eligible)
		})
	}
}

func TestWorkedToday(t *testing.T) {
	driverID := uuid.New()
	today := models.DateOf(testNow)

	t.Run("counts the open interval while active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, _ := newDriverUC(t, ctrl)

		clockIn := testNow.Add(-20 * time.Minute)
		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).
			Return(&models.DriverDailyLog{
				ActiveSeconds:    1800,
				Active:           true,
				LastActivationAt: &clockIn,
			}, true, nil)

		worked, err := uc.WorkedToday(context.Background(), driverID)

		assert.NoError(t, err)
		assert.Equal(t, 50*time.Minute, worked)
	})

	t.Run("no log today means zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, _ := newDriverUC(t, ctrl)

		driverRepo.EXPECT().GetDailyLog(gomock.Any(), driverID, today).Return(nil, false, nil)

		worked, err := uc.WorkedToday(context.Background(), driverID)

		assert.NoError(t, err)
		assert.Equal(t, time.Duration(0), worked)
	})
}

func TestUpdateLocation(t *testing.T) {
	driverID := uuid.New()
	here := models.Location{Latitude: 44.8125, Longitude: 20.4612}

	t.Run("writes the pool and publishes the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, driverGW := newDriverUC(t, ctrl)

		driverRepo.EXPECT().UpdateDriverLocation(gomock.Any(), driverID, here).Return(nil)
		driverGW.EXPECT().PublishLocationUpdate(gomock.Any(), models.LocationUpdate{
			DriverID: driverID,
			Location: here,
			At:       testNow,
		}).Return(nil)

		err := uc.UpdateLocation(context.Background(), driverID, here)

		assert.NoError(t, err)
	})

	t.Run("pool write failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, driverRepo, _ := newDriverUC(t, ctrl)

		driverRepo.EXPECT().UpdateDriverLocation(gomock.Any(), driverID, here).Return(assert.AnError)

		err := uc.UpdateLocation(context.Background(), driverID, here)

		assert.Error(t, err)
	})
}
