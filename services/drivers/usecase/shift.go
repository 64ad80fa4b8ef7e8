package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// Activate clocks the driver in for today. The daily log is created
// lazily on the first activation of the day.
func (uc *DriverUC) Activate(ctx context.Context, driverID uuid.UUID) (*models.DriverDailyLog, error) {
	return uc.applyShift(ctx, driverID, models.ShiftActivate)
}

// Deactivate clocks the driver out and accumulates the elapsed interval.
func (uc *DriverUC) Deactivate(ctx context.Context, driverID uuid.UUID) (*models.DriverDailyLog, error) {
	return uc.applyShift(ctx, driverID, models.ShiftDeactivate)
}

func (uc *DriverUC) applyShift(ctx context.Context, driverID uuid.UUID, action models.ShiftAction) (*models.DriverDailyLog, error) {
	now := uc.now()

	log, found, err := uc.driverRepo.GetDailyLog(ctx, driverID, models.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load daily log: %w", err)
	}
	if !found {
		fresh := models.NewDailyLog(driverID, now)
		log = &fresh
	}

	next := log.Apply(action, now)
	if err := uc.driverRepo.SaveDailyLog(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save daily log: %w", err)
	}

	uc.log.Info("driver shift updated",
		logger.String("driver_id", driverID.String()),
		logger.String("action", string(action)),
		logger.Int64("active_seconds", next.ActiveSeconds))

	event := models.ShiftEvent{
		DriverID:      driverID,
		Action:        action,
		ActiveSeconds: next.ActiveSeconds,
		At:            now,
	}
	if err := uc.driverGW.PublishShiftEvent(ctx, event); err != nil {
		uc.log.Warn("failed to publish shift event", logger.Err(err))
	}
	return &next, nil
}

// IsEligibleToday reports whether the driver may take new rides today.
func (uc *DriverUC) IsEligibleToday(ctx context.Context, driverID uuid.UUID) (bool, error) {
	log, found, err := uc.driverRepo.GetDailyLog(ctx, driverID, models.DateOf(uc.now()))
	if err != nil {
		return false, fmt.Errorf("failed to load daily log: %w", err)
	}
	if !found {
		return false, nil
	}
	return log.Eligible(uc.cfg.Match.WorkTimeCap()), nil
}

// WorkedToday returns the time the driver has worked today, counting the
// open interval when currently clocked in.
func (uc *DriverUC) WorkedToday(ctx context.Context, driverID uuid.UUID) (time.Duration, error) {
	now := uc.now()
	log, found, err := uc.driverRepo.GetDailyLog(ctx, driverID, models.DateOf(now))
	if err != nil {
		return 0, fmt.Errorf("failed to load daily log: %w", err)
	}
	if !found {
		return 0, nil
	}
	return time.Duration(log.WorkedSeconds(now)) * time.Second, nil
}

// UpdateLocation feeds a new vehicle position into the live pool and
// publishes it for the matcher.
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	if err := uc.driverRepo.UpdateDriverLocation(ctx, driverID, location); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	update := models.LocationUpdate{
		DriverID: driverID,
		Location: location,
		At:       uc.now(),
	}
	if err := uc.driverGW.PublishLocationUpdate(ctx, update); err != nil {
		uc.log.Warn("failed to publish location update", logger.Err(err))
	}
	return nil
}
