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
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
	pricingmocks "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/mocks"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/mocks"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/usecase"
)

var testNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

type rideFixture struct {
	rideRepo  *mocks.MockRideRepo
	rideGW    *mocks.MockRideGW
	pricingUC *pricingmocks.MockPricingUC
	uc        *usecase.RideUC
}

func newRideFixture(t *testing.T) (*rideFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &rideFixture{
		rideRepo:  mocks.NewMockRideRepo(ctrl),
		rideGW:    mocks.NewMockRideGW(ctrl),
		pricingUC: pricingmocks.NewMockPricingUC(ctrl),
	}
	f.uc = usecase.NewRideUC(&models.Config{}, f.rideRepo, f.rideGW, f.pricingUC, logger.NewNopLogger()).
		WithClock(func() time.Time { return testNow })
	return f, ctrl
}

func testRoute() models.Route {
	return models.Route{
		Stops: []models.Stop{
			{Address: "Bulevar kralja Aleksandra 73", Location: models.Location{Latitude: 44.8055, Longitude: 20.4764}},
			{Address: "Knez Mihailova 6", Location: models.Location{Latitude: 44.8170, Longitude: 20.4577}},
		},
		DistanceKm:           3.5,
		EstimatedTimeSeconds: 900,
		Geometry:             "encoded-polyline",
	}
}

func ongoingRide(driverID, passengerID uuid.UUID) *models.Ride {
	start := testNow.Add(-10 * time.Minute)
	price := 275.0
	return &models.Ride{
		RideID:          uuid.New(),
		Status:          models.RideStatusOngoing,
		VehicleCategory: models.VehicleStandard,
		DriverID:        &driverID,
		PassengerIDs:    []uuid.UUID{passengerID},
		CreatedAt:       testNow.Add(-15 * time.Minute),
		StartTime:       &start,
		Price:           &price,
		Route:           testRoute(),
	}
}

func TestOrderRide(t *testing.T) {
	t.Run("ride now is created ORDERED with the estimated price", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		driverID := uuid.New()
		passengerID := uuid.New()
		req := models.RideRequest{
			Route:        testRoute(),
			Preferences:  models.RidePreferences{VehicleCategory: models.VehicleStandard},
			PassengerIDs: []uuid.UUID{passengerID},
		}

		f.rideGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mreq models.MatchRequest) (*models.MatchResult, error) {
				assert.Equal(t, req.Route.Pickup().Location, mreq.Pickup)
				assert.Equal(t, 1, mreq.PassengerCount)
				assert.Equal(t, 900, mreq.EstimatedDurationSeconds)
				return &models.MatchResult{DriverID: driverID, VehicleCategory: models.VehicleStandard}, nil
			})
		f.pricingUC.EXPECT().Estimate(gomock.Any(), models.VehicleStandard, 3.5).Return(275.0, nil)
		f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ride *models.Ride) error {
				assert.Equal(t, models.RideStatusOrdered, ride.Status)
				assert.Equal(t, driverID, *ride.DriverID)
				assert.Equal(t, 275.0, *ride.Price)
				assert.Equal(t, testNow, ride.CreatedAt)
				return nil
			})
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.ordered", gomock.Any()).Return(nil)

		ride, err := f.uc.OrderRide(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, models.RideStatusOrdered, ride.Status)
		assert.Equal(t, passengerID, ride.MainPassenger())
	})

	t.Run("future window is created SCHEDULED", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		scheduledFor := testNow.Add(3 * time.Hour)
		req := models.RideRequest{
			Route: testRoute(),
			Preferences: models.RidePreferences{
				VehicleCategory: models.VehicleStandard,
				ScheduledFor:    &scheduledFor,
			},
			PassengerIDs: []uuid.UUID{uuid.New()},
		}

		f.rideGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
			Return(&models.MatchResult{DriverID: uuid.New()}, nil)
		f.pricingUC.EXPECT().Estimate(gomock.Any(), models.VehicleStandard, 3.5).Return(275.0, nil)
		f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ride *models.Ride) error {
				assert.Equal(t, models.RideStatusScheduled, ride.Status)
				assert.Equal(t, scheduledFor, *ride.ScheduledFor)
				return nil
			})
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.ordered", gomock.Any()).Return(nil)

		ride, err := f.uc.OrderRide(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, models.RideStatusScheduled, ride.Status)
	})

	t.Run("matcher failure propagates unchanged", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		f.rideGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
			Return(nil, match.ErrNoSuitableDrivers)

		ride, err := f.uc.OrderRide(context.Background(), models.RideRequest{
			Route:        testRoute(),
			PassengerIDs: []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, match.ErrNoSuitableDrivers)
		assert.Nil(t, ride)
	})

	t.Run("stale match surfaces as driver conflict", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		f.rideGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
			Return(&models.MatchResult{DriverID: uuid.New()}, nil)
		f.pricingUC.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).Return(275.0, nil)
		f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(rides.ErrDriverConflict)

		ride, err := f.uc.OrderRide(context.Background(), models.RideRequest{
			Route:        testRoute(),
			PassengerIDs: []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, rides.ErrDriverConflict)
		assert.Nil(t, ride)
	})

	t.Run("route with one stop is rejected", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride, err := f.uc.OrderRide(context.Background(), models.RideRequest{
			Route: models.Route{Stops: []models.Stop{{Address: "somewhere"}}},
		})

		assert.ErrorIs(t, err, rides.ErrInvalidRoute)
		assert.Nil(t, ride)
	})
}

func TestStartRide(t *testing.T) {
	driverID := uuid.New()

	t.Run("assigned driver starts an ordered ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())
		ride.Status = models.RideStatusOrdered
		ride.StartTime = nil

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
		f.rideRepo.EXPECT().MarkStarted(gomock.Any(), ride.RideID, models.RideStatusOrdered, testNow).Return(nil)
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.started", gomock.Any()).Return(nil)

		started, err := f.uc.StartRide(context.Background(), ride.RideID, driverID)

		assert.NoError(t, err)
		assert.Equal(t, models.RideStatusOngoing, started.Status)
		assert.Equal(t, testNow, *started.StartTime)
	})

	t.Run("another driver is rejected", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())
		ride.Status = models.RideStatusOrdered

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		_, err := f.uc.StartRide(context.Background(), ride.RideID, uuid.New())

		assert.ErrorIs(t, err, rides.ErrAccessDenied)
	})

	t.Run("completed ride cannot be restarted", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())
		ride.Status = models.RideStatusCompleted

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		_, err := f.uc.StartRide(context.Background(), ride.RideID, driverID)

		assert.ErrorIs(t, err, rides.ErrInvalidState)
	})
}

func TestStopRide(t *testing.T) {
	driverID := uuid.New()
	stopAt := models.Location{Latitude: 44.8100, Longitude: 20.4650}

	t.Run("reroutes, reprices and commits atomically", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())

		f.rideRepo.EXPECT().GetOngoingRideByDriver(gomock.Any(), driverID).Return(ride, nil)
		f.rideGW.EXPECT().ReverseGeocode(gomock.Any(), stopAt).Return("Resavska 1", nil)
		f.rideGW.EXPECT().RecomputeRoute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stops []models.Stop) (*models.RouteLeg, error) {
				assert.Len(t, stops, 2)
				assert.Equal(t, "Resavska 1", stops[1].Address)
				assert.Equal(t, stopAt, stops[1].Location)
				return &models.RouteLeg{DistanceMeters: 2100, DurationSeconds: 480, Geometry: "new-polyline"}, nil
			})
		f.pricingUC.EXPECT().Estimate(gomock.Any(), models.VehicleStandard, 2.1).Return(205.0, nil)
		f.rideRepo.EXPECT().StopRide(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stopped *models.Ride) error {
				assert.Equal(t, models.RideStatusStopped, stopped.Status)
				assert.Equal(t, testNow, *stopped.EndTime)
				assert.Equal(t, 205.0, *stopped.Price)
				assert.Equal(t, 2.1, stopped.Route.DistanceKm)
				assert.Equal(t, "new-polyline", stopped.Route.Geometry)
				return nil
			})
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.stopped", gomock.Any()).Return(nil)

		price, err := f.uc.StopRide(context.Background(), driverID, stopAt)

		assert.NoError(t, err)
		assert.Equal(t, 205.0, price)
	})

	t.Run("waypoints survive the rewrite", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())
		waypoint := models.Stop{Address: "Terazije 23", Location: models.Location{Latitude: 44.8125, Longitude: 20.4612}}
		ride.Route.Stops = []models.Stop{ride.Route.Stops[0], waypoint, ride.Route.Stops[1]}

		f.rideRepo.EXPECT().GetOngoingRideByDriver(gomock.Any(), driverID).Return(ride, nil)
		f.rideGW.EXPECT().ReverseGeocode(gomock.Any(), stopAt).Return("Resavska 1", nil)
		f.rideGW.EXPECT().RecomputeRoute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stops []models.Stop) (*models.RouteLeg, error) {
				assert.Len(t, stops, 3)
				assert.Equal(t, waypoint, stops[1])
				return &models.RouteLeg{DistanceMeters: 2500, DurationSeconds: 600, Geometry: "new-polyline"}, nil
			})
		f.pricingUC.EXPECT().Estimate(gomock.Any(), models.VehicleStandard, 2.5).Return(225.0, nil)
		f.rideRepo.EXPECT().StopRide(gomock.Any(), gomock.Any()).Return(nil)
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.stopped", gomock.Any()).Return(nil)

		_, err := f.uc.StopRide(context.Background(), driverID, stopAt)

		assert.NoError(t, err)
	})

	t.Run("no ongoing ride for driver", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		f.rideRepo.EXPECT().GetOngoingRideByDriver(gomock.Any(), driverID).
			Return(nil, rides.ErrRideNotFound)

		_, err := f.uc.StopRide(context.Background(), driverID, stopAt)

		assert.ErrorIs(t, err, rides.ErrRideNotFound)
	})

	t.Run("empty geometry from the router", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())

		f.rideRepo.EXPECT().GetOngoingRideByDriver(gomock.Any(), driverID).Return(ride, nil)
		f.rideGW.EXPECT().ReverseGeocode(gomock.Any(), stopAt).Return("Resavska 1", nil)
		f.rideGW.EXPECT().RecomputeRoute(gomock.Any(), gomock.Any()).
			Return(&models.RouteLeg{DistanceMeters: 2100, DurationSeconds: 480, Geometry: ""}, nil)

		_, err := f.uc.StopRide(context.Background(), driverID, stopAt)

		assert.ErrorIs(t, err, rides.ErrRouteGeometryMissing)
	})

	t.Run("geocoder exhausted its retry budget", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())

		f.rideRepo.EXPECT().GetOngoingRideByDriver(gomock.Any(), driverID).Return(ride, nil)
		f.rideGW.EXPECT().ReverseGeocode(gomock.Any(), stopAt).Return("", assert.AnError)

		_, err := f.uc.StopRide(context.Background(), driverID, stopAt)

		assert.ErrorIs(t, err, rides.ErrGeocodeFailed)
	})
}

func TestCancelRide(t *testing.T) {
	driverID := uuid.New()
	passengerID := uuid.New()

	t.Run("passenger cancels an ordered ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)
		ride.Status = models.RideStatusOrdered

		f.rideRepo.EXPECT().GetCurrentRideByUser(gomock.Any(), passengerID).Return(ride, nil)
		f.rideRepo.EXPECT().MarkCancelled(gomock.Any(), ride.RideID, models.RideStatusOrdered, "change of plans").Return(nil)
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.cancelled", gomock.Any()).Return(nil)

		err := f.uc.CancelRide(context.Background(), models.Actor{ID: passengerID, Role: models.RolePassenger}, "change of plans")

		assert.NoError(t, err)
	})

	t.Run("driver cancels a scheduled ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)
		ride.Status = models.RideStatusScheduled

		f.rideRepo.EXPECT().GetCurrentRideByUser(gomock.Any(), driverID).Return(ride, nil)
		f.rideRepo.EXPECT().MarkCancelled(gomock.Any(), ride.RideID, models.RideStatusScheduled, "vehicle breakdown").Return(nil)
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.cancelled", gomock.Any()).Return(nil)

		err := f.uc.CancelRide(context.Background(), models.Actor{ID: driverID, Role: models.RoleDriver}, "vehicle breakdown")

		assert.NoError(t, err)
	})

	t.Run("admin may not cancel", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		err := f.uc.CancelRide(context.Background(), models.Actor{ID: uuid.New(), Role: models.RoleAdmin}, "because")

		assert.ErrorIs(t, err, rides.ErrAccessDenied)
	})

	t.Run("actor without a current ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		f.rideRepo.EXPECT().GetCurrentRideByUser(gomock.Any(), passengerID).
			Return(nil, rides.ErrRideNotFound)

		err := f.uc.CancelRide(context.Background(), models.Actor{ID: passengerID, Role: models.RolePassenger}, "late")

		assert.ErrorIs(t, err, rides.ErrRideNotFound)
	})

	t.Run("started ride cannot be cancelled", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)

		f.rideRepo.EXPECT().GetCurrentRideByUser(gomock.Any(), passengerID).Return(ride, nil)

		err := f.uc.CancelRide(context.Background(), models.Actor{ID: passengerID, Role: models.RolePassenger}, "late")

		assert.ErrorIs(t, err, rides.ErrInvalidState)
	})
}

func TestCompleteRide(t *testing.T) {
	driverID := uuid.New()

	t.Run("assigned driver completes an ongoing ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
		f.rideRepo.EXPECT().MarkCompleted(gomock.Any(), ride.RideID, testNow).Return(nil)
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), "ride.completed", gomock.Any()).Return(nil)

		err := f.uc.CompleteRide(context.Background(), ride.RideID, driverID)

		assert.NoError(t, err)
	})

	t.Run("another driver's ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		err := f.uc.CompleteRide(context.Background(), ride.RideID, uuid.New())

		assert.ErrorIs(t, err, rides.ErrAccessDenied)
	})

	t.Run("ride not ongoing", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, uuid.New())
		ride.Status = models.RideStatusScheduled

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		err := f.uc.CompleteRide(context.Background(), ride.RideID, driverID)

		assert.ErrorIs(t, err, rides.ErrInvalidState)
	})

	t.Run("unknown ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		rideID := uuid.New()
		f.rideRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(nil, rides.ErrRideNotFound)

		err := f.uc.CompleteRide(context.Background(), rideID, driverID)

		assert.ErrorIs(t, err, rides.ErrRideNotFound)
	})
}

func TestPanicRide(t *testing.T) {
	driverID := uuid.New()
	passengerID := uuid.New()
	here := models.Location{Latitude: 44.8111, Longitude: 20.4622}

	t.Run("passenger panic appends an event and alerts", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
		f.rideRepo.EXPECT().AppendPanicEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.PanicEvent) error {
				assert.Equal(t, ride.RideID, event.RideID)
				assert.Equal(t, passengerID, event.ReportedBy)
				assert.Equal(t, here, event.Location)
				assert.Equal(t, testNow, event.CreatedAt)
				return nil
			})
		f.rideGW.EXPECT().PublishPanicAlert(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.PanicRide(context.Background(), ride.RideID, models.Actor{ID: passengerID, Role: models.RolePassenger}, here)

		assert.NoError(t, err)
	})

	t.Run("repeated panic appends another event", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil).Times(2)
		f.rideRepo.EXPECT().AppendPanicEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.rideGW.EXPECT().PublishPanicAlert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		actor := models.Actor{ID: driverID, Role: models.RoleDriver}
		assert.NoError(t, f.uc.PanicRide(context.Background(), ride.RideID, actor, here))
		assert.NoError(t, f.uc.PanicRide(context.Background(), ride.RideID, actor, here))
	})

	t.Run("outsider may not panic the ride", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		err := f.uc.PanicRide(context.Background(), ride.RideID, models.Actor{ID: uuid.New(), Role: models.RolePassenger}, here)

		assert.ErrorIs(t, err, rides.ErrAccessDenied)
	})

	t.Run("ride not ongoing", func(t *testing.T) {
		f, ctrl := newRideFixture(t)
		defer ctrl.Finish()

		ride := ongoingRide(driverID, passengerID)
		ride.Status = models.RideStatusCompleted

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

		err := f.uc.PanicRide(context.Background(), ride.RideID, models.Actor{ID: passengerID, Role: models.RolePassenger}, here)

		assert.ErrorIs(t, err, rides.ErrInvalidState)
	})
}
