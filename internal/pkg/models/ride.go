package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	// RideStatusOrdered is a ride-now request waiting for the driver to accept
	RideStatusOrdered RideStatus = "ORDERED"
	// RideStatusScheduled is a ride booked for a future time window
	RideStatusScheduled RideStatus = "SCHEDULED"
	// RideStatusOngoing is a ride the driver has started
	RideStatusOngoing RideStatus = "ONGOING"
	// RideStatusStopped is a ride ended early at the passenger's request
	RideStatusStopped RideStatus = "STOPPED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
	// RideStatusPanic is set only by the external escalation path, never by
	// the lifecycle core itself
	RideStatusPanic RideStatus = "PANIC"
)

// Terminal reports whether no further lifecycle transition is allowed.
func (s RideStatus) Terminal() bool {
	switch s {
	case RideStatusStopped, RideStatusCompleted, RideStatusCancelled, RideStatusPanic:
		return true
	}
	return false
}

// Ride represents a ride record. The first passenger ID is the main
// passenger who ordered the ride.
type Ride struct {
	RideID             uuid.UUID       `json:"ride_id" db:"ride_id"`
	Status             RideStatus      `json:"status" db:"status"`
	VehicleCategory    VehicleCategory `json:"vehicle_category" db:"vehicle_category"`
	DriverID           *uuid.UUID      `json:"driver_id,omitempty" db:"driver_id"`
	PassengerIDs       []uuid.UUID     `json:"passenger_ids"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	ScheduledFor       *time.Time      `json:"scheduled_for,omitempty" db:"scheduled_for"`
	StartTime          *time.Time      `json:"start_time,omitempty" db:"start_time"`
	EndTime            *time.Time      `json:"end_time,omitempty" db:"end_time"`
	Price              *float64        `json:"price,omitempty" db:"price"`
	CancellationReason *string         `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	Route              Route           `json:"route"`
}

// MainPassenger returns the ID of the passenger who ordered the ride.
func (r *Ride) MainPassenger() uuid.UUID {
	return r.PassengerIDs[0]
}

// HasPassenger reports whether the given user rides as a passenger.
func (r *Ride) HasPassenger(id uuid.UUID) bool {
	for _, p := range r.PassengerIDs {
		if p == id {
			return true
		}
	}
	return false
}

// BelongsToDriver reports whether the ride is assigned to the given driver.
func (r *Ride) BelongsToDriver(id uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == id
}

// EstimatedEnd returns the estimated end of the ride derived from its
// start and the route estimate. The second return value is false when the
// ride has not started yet.
func (r *Ride) EstimatedEnd() (time.Time, bool) {
	if r.StartTime == nil {
		return time.Time{}, false
	}
	return r.StartTime.Add(r.Route.EstimatedDuration()), true
}

// OccupiedWindow returns the time interval during which the ride keeps its
// driver occupied, widened by the given buffer on both sides. For a
// scheduled ride the window anchors at scheduled_for, for a started ride
// at start_time. The second return value is false when neither anchor is
// known.
func (r *Ride) OccupiedWindow(buffer time.Duration) (from, to time.Time, ok bool) {
	var anchor time.Time
	switch {
	case r.StartTime != nil:
		anchor = *r.StartTime
	case r.ScheduledFor != nil:
		anchor = *r.ScheduledFor
	default:
		return time.Time{}, time.Time{}, false
	}
	return anchor.Add(-buffer), anchor.Add(r.Route.EstimatedDuration()).Add(buffer), true
}

// PanicEvent records an emergency reported from an ongoing ride. Events
// are append-only; a repeated panic on the same ride adds another row.
type PanicEvent struct {
	EventID    uuid.UUID `json:"event_id" db:"event_id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	ReportedBy uuid.UUID `json:"reported_by" db:"reported_by"`
	Location   Location  `json:"location"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Actor identifies the user attempting a lifecycle operation.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

// User roles as carried in JWT claims
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
	RoleAdmin     = "admin"
)
