package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/constants"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
)

// OrderRide matches a driver and creates the ride. The ride starts out
// SCHEDULED when the passenger booked a future window, ORDERED otherwise.
// The create transaction re-verifies the driver assignment, so a match
// that went stale between selection and commit surfaces as
// ErrDriverConflict instead of silently double-booking the driver.
func (uc *RideUC) OrderRide(ctx context.Context, req models.RideRequest) (*models.Ride, error) {
	if !req.Route.Valid() {
		return nil, rides.ErrInvalidRoute
	}
	if len(req.PassengerIDs) == 0 {
		return nil, fmt.Errorf("%w: ride needs at least one passenger", rides.ErrInvalidRoute)
	}

	matchReq := models.MatchRequest{
		Pickup:                   req.Route.Pickup().Location,
		Preferences:              req.Preferences,
		PassengerCount:           req.PassengerCount(),
		EstimatedDurationSeconds: req.Route.EstimatedTimeSeconds,
	}
	result, err := uc.rideGW.RequestMatch(ctx, matchReq)
	if err != nil {
		return nil, err
	}

	price, err := uc.pricingUC.Estimate(ctx, req.Preferences.VehicleCategory, req.Route.DistanceKm)
	if err != nil {
		return nil, fmt.Errorf("failed to price ride: %w", err)
	}

	status := models.RideStatusOrdered
	if req.Preferences.ScheduledFor != nil {
		status = models.RideStatusScheduled
	}

	ride := &models.Ride{
		RideID:          uuid.New(),
		Status:          status,
		VehicleCategory: req.Preferences.VehicleCategory,
		DriverID:        &result.DriverID,
		PassengerIDs:    req.PassengerIDs,
		CreatedAt:       uc.now(),
		ScheduledFor:    req.Preferences.ScheduledFor,
		Price:           &price,
		Route:           req.Route,
	}
	ride.Route.RouteID = uuid.New()

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	uc.log.Info("ride ordered",
		logger.String("ride_id", ride.RideID.String()),
		logger.String("driver_id", result.DriverID.String()),
		logger.String("status", string(ride.Status)))
	uc.publishEvent(ctx, constants.SubjectRideOrdered, ride)
	return ride, nil
}

// StartRide is the external acceptance trigger: the assigned driver
// flips the ride to ONGOING and the start time is stamped.
func (uc *RideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.BelongsToDriver(driverID) {
		return nil, rides.ErrAccessDenied
	}
	if ride.Status != models.RideStatusOrdered && ride.Status != models.RideStatusScheduled {
		return nil, rides.ErrInvalidState
	}

	startedAt := uc.now()
	if err := uc.rideRepo.MarkStarted(ctx, rideID, ride.Status, startedAt); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusOngoing
	ride.StartTime = &startedAt

	uc.publishEvent(ctx, constants.SubjectRideStarted, ride)
	return ride, nil
}

// StopRide ends the driver's ongoing ride early at the given location.
// The route is rewritten through the original pickup and waypoints with
// the stop location as the new destination, and the price is recomputed
// from the rerouted distance. The whole mutation commits atomically.
func (uc *RideUC) StopRide(ctx context.Context, driverID uuid.UUID, location models.Location) (float64, error) {
	ride, err := uc.rideRepo.GetOngoingRideByDriver(ctx, driverID)
	if err != nil {
		return 0, err
	}

	address, err := uc.rideGW.ReverseGeocode(ctx, location)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", rides.ErrGeocodeFailed, err)
	}

	stops := make([]models.Stop, 0, len(ride.Route.Stops))
	stops = append(stops, ride.Route.Pickup())
	stops = append(stops, ride.Route.Waypoints()...)
	stops = append(stops, models.Stop{Address: address, Location: location})

	leg, err := uc.rideGW.RecomputeRoute(ctx, stops)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", rides.ErrRouteGeometryMissing, err)
	}
	if leg.Geometry == "" || leg.DistanceMeters <= 0 {
		return 0, rides.ErrRouteGeometryMissing
	}

	price, err := uc.pricingUC.Estimate(ctx, ride.VehicleCategory, leg.DistanceKm())
	if err != nil {
		return 0, fmt.Errorf("failed to price stopped ride: %w", err)
	}

	endedAt := uc.now()
	ride.Status = models.RideStatusStopped
	ride.EndTime = &endedAt
	ride.Price = &price
	ride.Route.Stops = stops
	ride.Route.DistanceKm = leg.DistanceKm()
	ride.Route.EstimatedTimeSeconds = leg.DurationSeconds
	ride.Route.Geometry = leg.Geometry

	if err := uc.rideRepo.StopRide(ctx, ride); err != nil {
		return 0, err
	}

	uc.log.Info("ride stopped early",
		logger.String("ride_id", ride.RideID.String()),
		logger.Float64("distance_km", ride.Route.DistanceKm),
		logger.Float64("price", price))
	uc.publishEvent(ctx, constants.SubjectRideStopped, ride)
	return price, nil
}

// CancelRide cancels the actor's current ride. Only the assigned driver
// or one of the passengers may cancel, and only before the ride starts.
func (uc *RideUC) CancelRide(ctx context.Context, actor models.Actor, reason string) error {
	if actor.Role != models.RoleDriver && actor.Role != models.RolePassenger {
		return rides.ErrAccessDenied
	}

	ride, err := uc.rideRepo.GetCurrentRideByUser(ctx, actor.ID)
	if err != nil {
		return err
	}

	switch actor.Role {
	case models.RoleDriver:
		if !ride.BelongsToDriver(actor.ID) {
			return rides.ErrAccessDenied
		}
	case models.RolePassenger:
		if !ride.HasPassenger(actor.ID) {
			return rides.ErrAccessDenied
		}
	}

	if ride.Status != models.RideStatusOrdered && ride.Status != models.RideStatusScheduled {
		return rides.ErrInvalidState
	}

	if err := uc.rideRepo.MarkCancelled(ctx, ride.RideID, ride.Status, reason); err != nil {
		return err
	}

	ride.Status = models.RideStatusCancelled
	uc.log.Info("ride cancelled",
		logger.String("ride_id", ride.RideID.String()),
		logger.String("cancelled_by", actor.ID.String()),
		logger.String("reason", reason))
	uc.publishEvent(ctx, constants.SubjectRideCancelled, ride)
	return nil
}

// CompleteRide finishes an ongoing ride at its destination.
func (uc *RideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if !ride.BelongsToDriver(driverID) {
		return rides.ErrAccessDenied
	}
	if ride.Status != models.RideStatusOngoing {
		return rides.ErrInvalidState
	}

	endedAt := uc.now()
	if err := uc.rideRepo.MarkCompleted(ctx, rideID, endedAt); err != nil {
		return err
	}

	ride.Status = models.RideStatusCompleted
	if ride.EndTime == nil {
		ride.EndTime = &endedAt
	}

	uc.publishEvent(ctx, constants.SubjectRideCompleted, ride)
	return nil
}

// PanicRide records an emergency on an ongoing ride. The ride keeps
// running; a repeated panic appends another event rather than failing.
func (uc *RideUC) PanicRide(ctx context.Context, rideID uuid.UUID, actor models.Actor, location models.Location) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if !ride.BelongsToDriver(actor.ID) && !ride.HasPassenger(actor.ID) {
		return rides.ErrAccessDenied
	}
	if ride.Status != models.RideStatusOngoing {
		return rides.ErrInvalidState
	}

	event := &models.PanicEvent{
		EventID:    uuid.New(),
		RideID:     rideID,
		ReportedBy: actor.ID,
		Location:   location,
		CreatedAt:  uc.now(),
	}
	if err := uc.rideRepo.AppendPanicEvent(ctx, event); err != nil {
		return err
	}

	uc.log.Warn("panic reported on ride",
		logger.String("ride_id", rideID.String()),
		logger.String("reported_by", actor.ID.String()))

	alert := models.PanicAlert{
		RideID:     rideID,
		ReportedBy: actor.ID,
		Location:   location,
		At:         event.CreatedAt,
	}
	if err := uc.rideGW.PublishPanicAlert(ctx, alert); err != nil {
		uc.log.Warn("failed to publish panic alert", logger.Err(err))
	}
	return nil
}

// GetRide returns the ride with its route and passengers.
func (uc *RideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, rideID)
}

func (uc *RideUC) publishEvent(ctx context.Context, subject string, ride *models.Ride) {
	event := models.RideEvent{
		RideID:   ride.RideID,
		DriverID: ride.DriverID,
		Status:   ride.Status,
		Price:    ride.Price,
		At:       uc.now(),
	}
	if err := uc.rideGW.PublishRideEvent(ctx, subject, event); err != nil {
		uc.log.Warn("failed to publish ride event",
			logger.String("subject", subject),
			logger.Err(err))
	}
}
