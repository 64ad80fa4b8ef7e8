package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
)

var plannedStatuses = []string{
	string(models.RideStatusOrdered),
	string(models.RideStatusScheduled),
	string(models.RideStatusOngoing),
}

// CreateRide persists the ride, its route, stops and passenger list in
// one transaction. The driver's planned rides are locked and re-checked
// inside the transaction, so a match that raced with another order fails
// with ErrDriverConflict instead of double-booking the driver.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.checkDriverConflict(ctx, tx, ride); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rides (ride_id, status, vehicle_category, driver_id, created_at,
			scheduled_for, start_time, end_time, price, cancellation_reason)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, NULL, $7, NULL)
	`, ride.RideID, ride.Status, ride.VehicleCategory, ride.DriverID,
		ride.CreatedAt, ride.ScheduledFor, ride.Price)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO routes (route_id, ride_id, distance_km, estimated_time_seconds, geometry)
		VALUES ($1, $2, $3, $4, $5)
	`, ride.Route.RouteID, ride.RideID, ride.Route.DistanceKm,
		ride.Route.EstimatedTimeSeconds, ride.Route.Geometry)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	if err := insertStops(ctx, tx, ride.Route.RouteID, ride.Route.Stops); err != nil {
		return err
	}

	for i, passengerID := range ride.PassengerIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO ride_passengers (ride_id, seq, passenger_id)
			VALUES ($1, $2, $3)
		`, ride.RideID, i, passengerID)
		if err != nil {
			return fmt.Errorf("failed to insert ride passenger: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ride: %w", err)
	}
	return nil
}

// checkDriverConflict locks the driver's planned rides and re-runs the
// overlap rules the matcher used. A busy-fallback match stays valid: an
// ONGOING ride that ends within the lookahead window does not conflict
// with a ride-now order.
func (r *RideRepo) checkDriverConflict(ctx context.Context, tx *sqlx.Tx, ride *models.Ride) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT r.status, r.scheduled_for, r.start_time, rt.estimated_time_seconds
		FROM rides r
		JOIN routes rt ON rt.ride_id = r.ride_id
		WHERE r.driver_id = $1 AND r.status = ANY($2)
		FOR UPDATE OF r
	`, ride.DriverID, pq.Array(plannedStatuses))
	if err != nil {
		return fmt.Errorf("failed to lock planned rides: %w", err)
	}
	defer rows.Close()

	var planned []models.Ride
	for rows.Next() {
		var p models.Ride
		var scheduledFor, startTime sql.NullTime
		if err := rows.Scan(&p.Status, &scheduledFor, &startTime, &p.Route.EstimatedTimeSeconds); err != nil {
			return fmt.Errorf("failed to scan planned ride: %w", err)
		}
		if scheduledFor.Valid {
			t := scheduledFor.Time
			p.ScheduledFor = &t
		}
		if startTime.Valid {
			t := startTime.Time
			p.StartTime = &t
		}
		planned = append(planned, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read planned rides: %w", err)
	}

	if r.conflicts(planned, ride) {
		return rides.ErrDriverConflict
	}
	return nil
}

func (r *RideRepo) conflicts(planned []models.Ride, ride *models.Ride) bool {
	buffer := r.cfg.Match.ScheduleBuffer()
	anchor := ride.CreatedAt
	if ride.ScheduledFor != nil {
		anchor = *ride.ScheduledFor
	}
	from := anchor.Add(-buffer)
	to := anchor.Add(ride.Route.EstimatedDuration()).Add(buffer)

	for _, p := range planned {
		if ride.ScheduledFor == nil {
			// A ride-now order only tolerates an ONGOING ride that frees
			// the driver within the lookahead window.
			if p.Status == models.RideStatusOrdered {
				return true
			}
			if p.Status == models.RideStatusOngoing {
				end, ok := p.EstimatedEnd()
				if !ok || end.After(ride.CreatedAt.Add(r.cfg.Match.Lookahead())) {
					return true
				}
			}
			continue
		}

		pFrom, pTo, ok := p.OccupiedWindow(buffer)
		if !ok {
			continue
		}
		if pFrom.Before(to) && from.Before(pTo) {
			return true
		}
	}
	return false
}

// GetRide loads a ride with its route, stops and passenger list.
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `WHERE r.ride_id = $1`, rideID)
}

// GetOngoingRideByDriver returns the driver's ONGOING ride.
func (r *RideRepo) GetOngoingRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `WHERE r.driver_id = $1 AND r.status = 'ONGOING'`, driverID)
}

// GetCurrentRideByUser returns the user's most recent non-terminal ride,
// whether they ride as driver or passenger.
func (r *RideRepo) GetCurrentRideByUser(ctx context.Context, userID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT r.ride_id
		FROM rides r
		LEFT JOIN ride_passengers p ON p.ride_id = r.ride_id
		WHERE (r.driver_id = $1 OR p.passenger_id = $1)
			AND r.status IN ('ORDERED', 'SCHEDULED', 'ONGOING')
		ORDER BY r.created_at DESC
		LIMIT 1
	`

	var rideID uuid.UUID
	err := r.db.GetContext(ctx, &rideID, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query current ride: %w", err)
	}
	return r.GetRide(ctx, rideID)
}

func (r *RideRepo) getRide(ctx context.Context, where string, arg interface{}) (*models.Ride, error) {
	query := `
		SELECT
			r.ride_id, r.status, r.vehicle_category, r.driver_id, r.created_at,
			r.scheduled_for, r.start_time, r.end_time, r.price, r.cancellation_reason,
			rt.route_id, rt.distance_km, rt.estimated_time_seconds, rt.geometry
		FROM rides r
		JOIN routes rt ON rt.ride_id = r.ride_id
	` + where

	var ride models.Ride
	var driverID uuid.NullUUID
	var scheduledFor, startTime, endTime sql.NullTime
	var price sql.NullFloat64
	var reason sql.NullString

	row := r.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(
		&ride.RideID,
		&ride.Status,
		&ride.VehicleCategory,
		&driverID,
		&ride.CreatedAt,
		&scheduledFor,
		&startTime,
		&endTime,
		&price,
		&reason,
		&ride.Route.RouteID,
		&ride.Route.DistanceKm,
		&ride.Route.EstimatedTimeSeconds,
		&ride.Route.Geometry,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ride: %w", err)
	}

	if driverID.Valid {
		id := driverID.UUID
		ride.DriverID = &id
	}
	if scheduledFor.Valid {
		t := scheduledFor.Time
		ride.ScheduledFor = &t
	}
	if startTime.Valid {
		t := startTime.Time
		ride.StartTime = &t
	}
	if endTime.Valid {
		t := endTime.Time
		ride.EndTime = &t
	}
	if price.Valid {
		p := price.Float64
		ride.Price = &p
	}
	if reason.Valid {
		s := reason.String
		ride.CancellationReason = &s
	}

	if err := r.loadStops(ctx, &ride); err != nil {
		return nil, err
	}
	if err := r.loadPassengers(ctx, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideRepo) loadStops(ctx context.Context, ride *models.Ride) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT address, latitude, longitude
		FROM stops
		WHERE route_id = $1
		ORDER BY seq
	`, ride.Route.RouteID)
	if err != nil {
		return fmt.Errorf("failed to query stops: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.Address, &s.Location.Latitude, &s.Location.Longitude); err != nil {
			return fmt.Errorf("failed to scan stop: %w", err)
		}
		ride.Route.Stops = append(ride.Route.Stops, s)
	}
	return rows.Err()
}

func (r *RideRepo) loadPassengers(ctx context.Context, ride *models.Ride) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT passenger_id
		FROM ride_passengers
		WHERE ride_id = $1
		ORDER BY seq
	`, ride.RideID)
	if err != nil {
		return fmt.Errorf("failed to query ride passengers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan ride passenger: %w", err)
		}
		ride.PassengerIDs = append(ride.PassengerIDs, id)
	}
	return rows.Err()
}

// MarkStarted moves the ride to ONGOING. The expected current status
// guards the update; a lost race surfaces as ErrInvalidState.
func (r *RideRepo) MarkStarted(ctx context.Context, rideID uuid.UUID, from models.RideStatus, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE rides
		SET status = 'ONGOING', start_time = $1
		WHERE ride_id = $2 AND status = $3
	`, at, rideID, from)
	if err != nil {
		return fmt.Errorf("failed to start ride: %w", err)
	}
	return casOutcome(result)
}

// MarkCompleted moves the ride from ONGOING to COMPLETED. The end time
// is only written when a stop has not already set it.
func (r *RideRepo) MarkCompleted(ctx context.Context, rideID uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE rides
		SET status = 'COMPLETED', end_time = COALESCE(end_time, $1)
		WHERE ride_id = $2 AND status = 'ONGOING'
	`, at, rideID)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}
	return casOutcome(result)
}

// MarkCancelled moves the ride to CANCELLED and records the reason.
func (r *RideRepo) MarkCancelled(ctx context.Context, rideID uuid.UUID, from models.RideStatus, reason string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE rides
		SET status = 'CANCELLED', cancellation_reason = $1
		WHERE ride_id = $2 AND status = $3
	`, reason, rideID, from)
	if err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}
	return casOutcome(result)
}

// StopRide commits the early-stop mutation atomically: the status CAS,
// the end time, the new price and the rewritten route with its stops.
func (r *RideRepo) StopRide(ctx context.Context, ride *models.Ride) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE rides
		SET status = 'STOPPED', end_time = $1, price = $2
		WHERE ride_id = $3 AND status = 'ONGOING'
	`, ride.EndTime, ride.Price, ride.RideID)
	if err != nil {
		return fmt.Errorf("failed to stop ride: %w", err)
	}
	if err := casOutcome(result); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE routes
		SET distance_km = $1, estimated_time_seconds = $2, geometry = $3
		WHERE route_id = $4
	`, ride.Route.DistanceKm, ride.Route.EstimatedTimeSeconds,
		ride.Route.Geometry, ride.Route.RouteID)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM stops WHERE route_id = $1`, ride.Route.RouteID)
	if err != nil {
		return fmt.Errorf("failed to clear stops: %w", err)
	}
	if err := insertStops(ctx, tx, ride.Route.RouteID, ride.Route.Stops); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stop: %w", err)
	}
	return nil
}

func insertStops(ctx context.Context, tx *sqlx.Tx, routeID uuid.UUID, stops []models.Stop) error {
	for i, s := range stops {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stops (route_id, seq, address, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5)
		`, routeID, i, s.Address, s.Location.Latitude, s.Location.Longitude)
		if err != nil {
			return fmt.Errorf("failed to insert stop: %w", err)
		}
	}
	return nil
}

func casOutcome(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return rides.ErrInvalidState
	}
	return nil
}
