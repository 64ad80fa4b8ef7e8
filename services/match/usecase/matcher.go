package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// FindDriverForRide selects one eligible driver for the request.
//
// Eligibility narrows in stages: clocked-in today, under the daily
// work-time cap, vehicle fits the request, then free drivers ranked by
// proximity to the pickup. Only when no free driver exists does the
// busy fallback consider drivers whose current ride ends within the
// lookahead window. Free-before-busy ordering guarantees a passenger is
// never kept waiting for a driver who is not imminently available.
func (uc *MatchUC) FindDriverForRide(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	now := uc.now()

	candidates, err := uc.matchRepo.GetActiveDriversToday(ctx, models.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load active drivers: %w", err)
	}
	if len(candidates) == 0 {
		uc.publishFailed(ctx, req)
		return nil, match.ErrNoSuitableDrivers
	}

	capSeconds := int64(uc.cfg.Match.WorkTimeCap().Seconds())
	eligible := make([]models.DriverCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.ActiveSeconds >= capSeconds {
			continue
		}
		if !c.Vehicle.Fits(req.Preferences, req.PassengerCount) {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		uc.publishFailed(ctx, req)
		return nil, match.ErrNoSuitableDrivers
	}

	ids := driverIDs(eligible)
	planned, err := uc.matchRepo.GetPlannedRides(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned rides: %w", err)
	}
	ridesByDriver := groupByDriver(planned)

	free, busy := uc.partition(eligible, ridesByDriver, req, now)

	if len(free) > 0 {
		result, err := uc.nearestFree(ctx, free, req.Pickup)
		if err != nil {
			return nil, err
		}
		if result != nil {
			uc.publishFound(ctx, *result)
			return result, nil
		}
	}

	result := uc.bestBusyFallback(busy, ridesByDriver, req, now)
	if result == nil {
		uc.publishFailed(ctx, req)
		return nil, match.ErrNoSuitableDrivers
	}
	uc.publishFound(ctx, *result)
	return result, nil
}

// partition splits eligible drivers into free and busy relative to the
// requested window.
func (uc *MatchUC) partition(
	eligible []models.DriverCandidate,
	ridesByDriver map[uuid.UUID][]models.Ride,
	req models.MatchRequest,
	now time.Time,
) (free, busy []models.DriverCandidate) {
	for _, c := range eligible {
		if uc.isBusy(ridesByDriver[c.DriverID], req, now) {
			busy = append(busy, c)
		} else {
			free = append(free, c)
		}
	}
	return free, busy
}

// isBusy decides whether any of the driver's planned rides conflicts
// with the requested window. For a ride-now request an ONGOING ride or a
// not-yet-accepted ORDERED ride makes the driver busy, the same rides
// the order transaction rejects; for a scheduled request any planned
// ride whose occupied interval overlaps the requested one does.
func (uc *MatchUC) isBusy(planned []models.Ride, req models.MatchRequest, now time.Time) bool {
	if req.Preferences.ScheduledFor == nil {
		for _, r := range planned {
			if r.Status == models.RideStatusOngoing || r.Status == models.RideStatusOrdered {
				return true
			}
		}
		return false
	}

	reqFrom := *req.Preferences.ScheduledFor
	reqTo := reqFrom.Add(time.Duration(req.EstimatedDurationSeconds) * time.Second)
	buffer := uc.cfg.Match.ScheduleBuffer()

	for _, r := range planned {
		from, to, ok := r.OccupiedWindow(buffer)
		if !ok {
			continue
		}
		if from.Before(reqTo) && reqFrom.Before(to) {
			return true
		}
	}
	return false
}

// nearestFree returns the free driver closest to the pickup, tie-broken
// by driver ID ascending. Drivers without a live location are skipped: a
// vehicle that never reported a position cannot be ranked.
func (uc *MatchUC) nearestFree(ctx context.Context, free []models.DriverCandidate, pickup models.Location) (*models.MatchResult, error) {
	locations, err := uc.matchRepo.GetDriverLocations(ctx, driverIDs(free))
	if err != nil {
		return nil, fmt.Errorf("failed to load driver locations: %w", err)
	}

	ranked := make([]utils.Ranked, 0, len(free))
	byID := make(map[string]models.DriverCandidate, len(free))
	for _, c := range free {
		loc, ok := locations[c.DriverID]
		if !ok {
			uc.log.Warn("driver has no live location, skipping",
				logger.String("driver_id", c.DriverID.String()))
			continue
		}
		id := c.DriverID.String()
		byID[id] = c
		ranked = append(ranked, utils.Ranked{
			ID:       id,
			Distance: utils.CalculateDistance(loc, pickup),
		})
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	utils.SortByDistance(ranked)
	best := byID[ranked[0].ID]
	return &models.MatchResult{
		DriverID:        best.DriverID,
		VehicleCategory: best.Vehicle.Category,
		DriverLocation:  locations[best.DriverID],
	}, nil
}

// bestBusyFallback considers busy drivers whose current ONGOING ride is
// estimated to end within the lookahead window. A driver whose conflict
// is a not-yet-started SCHEDULED ride is never eligible here, and for a
// ride-now request neither is a driver holding a pending ORDERED ride,
// since the order transaction would reject that assignment. Qualifying
// drivers are ranked by the distance from their ride's destination to
// the requested pickup.
func (uc *MatchUC) bestBusyFallback(
	busy []models.DriverCandidate,
	ridesByDriver map[uuid.UUID][]models.Ride,
	req models.MatchRequest,
	now time.Time,
) *models.MatchResult {
	deadline := now.Add(uc.cfg.Match.Lookahead())

	ranked := make([]utils.Ranked, 0, len(busy))
	byID := make(map[string]busyPick, len(busy))
	for _, c := range busy {
		planned := ridesByDriver[c.DriverID]
		if uc.scheduledConflict(planned, req, now) {
			continue
		}
		if req.Preferences.ScheduledFor == nil && hasPendingOrder(planned) {
			continue
		}
		ongoing := currentOngoing(planned)
		if ongoing == nil {
			continue
		}
		end, ok := ongoing.EstimatedEnd()
		if !ok || end.After(deadline) {
			continue
		}
		dest := ongoing.Route.Destination().Location
		id := c.DriverID.String()
		byID[id] = busyPick{candidate: c, dropoff: dest}
		ranked = append(ranked, utils.Ranked{
			ID:       id,
			Distance: utils.CalculateDistance(dest, req.Pickup),
		})
	}
	if len(ranked) == 0 {
		return nil
	}

	utils.SortByDistance(ranked)
	best := byID[ranked[0].ID]
	return &models.MatchResult{
		DriverID:        best.candidate.DriverID,
		VehicleCategory: best.candidate.Vehicle.Category,
		DriverLocation:  best.dropoff,
		Busy:            true,
	}
}

type busyPick struct {
	candidate models.DriverCandidate
	dropoff   models.Location
}

// scheduledConflict reports whether one of the driver's not-yet-started
// SCHEDULED rides overlaps the requested window.
func (uc *MatchUC) scheduledConflict(planned []models.Ride, req models.MatchRequest, now time.Time) bool {
	reqFrom := now
	if req.Preferences.ScheduledFor != nil {
		reqFrom = *req.Preferences.ScheduledFor
	}
	reqTo := reqFrom.Add(time.Duration(req.EstimatedDurationSeconds) * time.Second)
	buffer := uc.cfg.Match.ScheduleBuffer()

	for _, r := range planned {
		if r.Status != models.RideStatusScheduled {
			continue
		}
		from, to, ok := r.OccupiedWindow(buffer)
		if !ok {
			continue
		}
		if from.Before(reqTo) && reqFrom.Before(to) {
			return true
		}
	}
	return false
}

// hasPendingOrder reports whether the driver holds a not-yet-accepted
// ORDERED ride.
func hasPendingOrder(planned []models.Ride) bool {
	for _, r := range planned {
		if r.Status == models.RideStatusOrdered {
			return true
		}
	}
	return false
}

// currentOngoing returns the driver's ONGOING ride, if any.
func currentOngoing(planned []models.Ride) *models.Ride {
	for i := range planned {
		if planned[i].Status == models.RideStatusOngoing {
			return &planned[i]
		}
	}
	return nil
}

func (uc *MatchUC) publishFound(ctx context.Context, result models.MatchResult) {
	if err := uc.matchGW.PublishMatchFound(ctx, result); err != nil {
		uc.log.Warn("failed to publish match found event", logger.Err(err))
	}
}

func (uc *MatchUC) publishFailed(ctx context.Context, req models.MatchRequest) {
	if err := uc.matchGW.PublishMatchFailed(ctx, req); err != nil {
		uc.log.Warn("failed to publish match failed event", logger.Err(err))
	}
}

func driverIDs(candidates []models.DriverCandidate) []uuid.UUID {
	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.DriverID
	}
	return ids
}

func groupByDriver(rides []models.Ride) map[uuid.UUID][]models.Ride {
	grouped := make(map[uuid.UUID][]models.Ride, len(rides))
	for _, r := range rides {
		if r.DriverID == nil {
			continue
		}
		grouped[*r.DriverID] = append(grouped[*r.DriverID], r)
	}
	return grouped
}
