package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// GetActiveDriversToday returns every driver clocked in on the given day
// joined with their vehicle spec and accumulated active seconds. Drivers
// without a daily log row for the day are not returned at all.
func (r *MatchRepo) GetActiveDriversToday(ctx context.Context, day time.Time) ([]models.DriverCandidate, error) {
	query := `
		SELECT
			d.driver_id, d.category, d.seats, d.pet_friendly, d.baby_friendly,
			l.active_seconds
		FROM drivers d
		JOIN driver_daily_logs l ON l.driver_id = d.driver_id
		WHERE l.log_date = $1 AND l.active = true
		ORDER BY d.driver_id
	`

	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query active drivers: %w", err)
	}
	defer rows.Close()

	var candidates []models.DriverCandidate
	for rows.Next() {
		var c models.DriverCandidate
		var category string
		err := rows.Scan(
			&c.DriverID,
			&category,
			&c.Vehicle.Seats,
			&c.Vehicle.PetFriendly,
			&c.Vehicle.BabyFriendly,
			&c.ActiveSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver candidate: %w", err)
		}
		c.Vehicle.Category = models.VehicleCategory(category)
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}
