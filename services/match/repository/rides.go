package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// GetPlannedRides returns the ORDERED, SCHEDULED and ONGOING rides
// assigned to any of the given drivers, with the route estimate and the
// destination stop resolved. This is the read model the matcher uses for
// overlap checks and busy-fallback ranking; it carries the same statuses
// the order transaction locks, so both sides see the same conflicts.
func (r *MatchRepo) GetPlannedRides(ctx context.Context, driverIDs []uuid.UUID) ([]models.Ride, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(driverIDs))
	for i, id := range driverIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT
			r.ride_id, r.status, r.vehicle_category, r.driver_id,
			r.scheduled_for, r.start_time,
			rt.route_id, rt.distance_km, rt.estimated_time_seconds, rt.geometry,
			dest.address, dest.latitude, dest.longitude
		FROM rides r
		JOIN routes rt ON rt.ride_id = r.ride_id
		JOIN LATERAL (
			SELECT s.address, s.latitude, s.longitude
			FROM stops s
			WHERE s.route_id = rt.route_id
			ORDER BY s.seq DESC
			LIMIT 1
		) dest ON true
		WHERE r.driver_id = ANY($1) AND r.status = ANY($2)
	`

	statuses := []string{
		string(models.RideStatusOrdered),
		string(models.RideStatusScheduled),
		string(models.RideStatusOngoing),
	}
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids), pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to query planned rides: %w", err)
	}
	defer rows.Close()

	var rides []models.Ride
	for rows.Next() {
		var ride models.Ride
		var driverID uuid.UUID
		var scheduledFor, startTime sql.NullTime
		var dest models.Stop

		err := rows.Scan(
			&ride.RideID,
			&ride.Status,
			&ride.VehicleCategory,
			&driverID,
			&scheduledFor,
			&startTime,
			&ride.Route.RouteID,
			&ride.Route.DistanceKm,
			&ride.Route.EstimatedTimeSeconds,
			&ride.Route.Geometry,
			&dest.Address,
			&dest.Location.Latitude,
			&dest.Location.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned ride: %w", err)
		}

		ride.DriverID = &driverID
		if scheduledFor.Valid {
			t := scheduledFor.Time
			ride.ScheduledFor = &t
		}
		if startTime.Valid {
			t := startTime.Time
			ride.StartTime = &t
		}
		ride.Route.Stops = []models.Stop{dest}
		rides = append(rides, ride)
	}

	return rides, rows.Err()
}
