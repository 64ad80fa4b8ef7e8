package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftAction is a driver clocking in or out.
type ShiftAction string

const (
	ShiftActivate   ShiftAction = "activate"
	ShiftDeactivate ShiftAction = "deactivate"
)

// DriverDailyLog is one driver's shift record for a single calendar day.
// Work-time caps reset at midnight, so only today's row matters to
// dispatch. Created lazily on the driver's first activation of the day.
type DriverDailyLog struct {
	DriverID         uuid.UUID  `json:"driver_id" db:"driver_id"`
	LogDate          time.Time  `json:"log_date" db:"log_date"`
	ActiveSeconds    int64      `json:"active_seconds" db:"active_seconds"`
	Active           bool       `json:"active" db:"active"`
	LastActivationAt *time.Time `json:"last_activation_at,omitempty" db:"last_activation_at"`
}

// NewDailyLog returns an empty log row for the driver on the day of now.
func NewDailyLog(driverID uuid.UUID, now time.Time) DriverDailyLog {
	return DriverDailyLog{
		DriverID: driverID,
		LogDate:  DateOf(now),
	}
}

// Apply returns the log after the given shift action at the given time.
// Activating an already active log or deactivating an inactive one leaves
// it unchanged, so repeated clock-ins never double-count.
func (l DriverDailyLog) Apply(action ShiftAction, now time.Time) DriverDailyLog {
	switch action {
	case ShiftActivate:
		if l.Active {
			return l
		}
		at := now
		l.Active = true
		l.LastActivationAt = &at
	case ShiftDeactivate:
		if !l.Active {
			return l
		}
		if l.LastActivationAt != nil {
			l.ActiveSeconds += int64(now.Sub(*l.LastActivationAt).Seconds())
		}
		l.Active = false
		l.LastActivationAt = nil
	}
	return l
}

// WorkedSeconds returns the accumulated active seconds, counting the open
// interval when the driver is currently clocked in.
func (l DriverDailyLog) WorkedSeconds(now time.Time) int64 {
	total := l.ActiveSeconds
	if l.Active && l.LastActivationAt != nil {
		total += int64(now.Sub(*l.LastActivationAt).Seconds())
	}
	return total
}

// Eligible reports whether the driver may take new rides: clocked in and
// with the accumulated time still under the daily work-time cap.
func (l DriverDailyLog) Eligible(cap time.Duration) bool {
	return l.Active && l.ActiveSeconds < int64(cap.Seconds())
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
