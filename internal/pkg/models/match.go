package models

import (
	"time"

	"github.com/google/uuid"
)

// RidePreferences is what the passenger asked for when ordering.
// ScheduledFor is nil for a ride-now request.
type RidePreferences struct {
	VehicleCategory VehicleCategory `json:"vehicle_category"`
	PetFriendly     bool            `json:"pet_friendly"`
	BabyFriendly    bool            `json:"baby_friendly"`
	ScheduledFor    *time.Time      `json:"scheduled_for,omitempty"`
}

// MatchRequest asks the dispatch matcher for one eligible driver.
type MatchRequest struct {
	Pickup                   Location        `json:"pickup"`
	Preferences              RidePreferences `json:"preferences"`
	PassengerCount           int             `json:"passenger_count"`
	EstimatedDurationSeconds int             `json:"estimated_duration_seconds"`
}

// MatchResult is the driver the matcher selected.
type MatchResult struct {
	DriverID        uuid.UUID       `json:"driver_id"`
	VehicleCategory VehicleCategory `json:"vehicle_category"`
	DriverLocation  Location        `json:"driver_location"`
	// Busy is true when the driver was taken from the busy fallback and
	// will only free up within the lookahead window.
	Busy bool `json:"busy"`
}

// DriverCandidate is the matcher's read model of one active driver:
// vehicle capability joined with today's accumulated shift seconds.
type DriverCandidate struct {
	DriverID      uuid.UUID   `json:"driver_id" db:"driver_id"`
	Vehicle       VehicleSpec `json:"vehicle"`
	ActiveSeconds int64       `json:"active_seconds" db:"active_seconds"`
}
