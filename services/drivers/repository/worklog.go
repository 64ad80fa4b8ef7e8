package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// GetDailyLog returns the driver's log row for the given day. The second
// return value is false when the driver has not activated that day yet.
func (r *DriverRepo) GetDailyLog(ctx context.Context, driverID uuid.UUID, day time.Time) (*models.DriverDailyLog, bool, error) {
	query := `
		SELECT driver_id, log_date, active_seconds, active, last_activation_at
		FROM driver_daily_logs
		WHERE driver_id = $1 AND log_date = $2
	`

	var log models.DriverDailyLog
	var lastActivation sql.NullTime
	err := r.db.QueryRowContext(ctx, query, driverID, day).Scan(
		&log.DriverID,
		&log.LogDate,
		&log.ActiveSeconds,
		&log.Active,
		&lastActivation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query daily log: %w", err)
	}

	if lastActivation.Valid {
		t := lastActivation.Time
		log.LastActivationAt = &t
	}
	return &log, true, nil
}

// SaveDailyLog upserts the log row keyed by (driver_id, log_date).
func (r *DriverRepo) SaveDailyLog(ctx context.Context, log *models.DriverDailyLog) error {
	query := `
		INSERT INTO driver_daily_logs (driver_id, log_date, active_seconds, active, last_activation_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (driver_id, log_date) DO UPDATE
		SET active_seconds = EXCLUDED.active_seconds,
			active = EXCLUDED.active,
			last_activation_at = EXCLUDED.last_activation_at
	`

	_, err := r.db.ExecContext(ctx, query,
		log.DriverID, log.LogDate, log.ActiveSeconds, log.Active, log.LastActivationAt)
	if err != nil {
		return fmt.Errorf("failed to upsert daily log: %w", err)
	}
	return nil
}
