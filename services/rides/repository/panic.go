package repository

import (
	"context"
	"fmt"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// AppendPanicEvent inserts a panic event row. Rows are never updated or
// deleted; repeated panics on the same ride each add their own row.
func (r *RideRepo) AppendPanicEvent(ctx context.Context, event *models.PanicEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO panic_events (event_id, ride_id, reported_by, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.EventID, event.RideID, event.ReportedBy,
		event.Location.Latitude, event.Location.Longitude, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert panic event: %w", err)
	}
	return nil
}
