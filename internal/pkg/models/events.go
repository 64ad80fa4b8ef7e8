package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftEvent is published when a driver clocks in or out.
type ShiftEvent struct {
	DriverID      uuid.UUID   `json:"driver_id"`
	Action        ShiftAction `json:"action"`
	ActiveSeconds int64       `json:"active_seconds"`
	At            time.Time   `json:"at"`
}

// LocationUpdate is published when a driver's vehicle reports a new
// position. The feed itself is external; this is its entry point.
type LocationUpdate struct {
	DriverID uuid.UUID `json:"driver_id"`
	Location Location  `json:"location"`
	At       time.Time `json:"at"`
}

// RideEvent is the payload published on ride lifecycle subjects.
type RideEvent struct {
	RideID   uuid.UUID  `json:"ride_id"`
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
	Status   RideStatus `json:"status"`
	Price    *float64   `json:"price,omitempty"`
	At       time.Time  `json:"at"`
}

// PanicAlert is the payload published when a panic is reported. Terminal
// panic handling (dispatching help, admin alerting) happens downstream.
type PanicAlert struct {
	RideID     uuid.UUID `json:"ride_id"`
	ReportedBy uuid.UUID `json:"reported_by"`
	Location   Location  `json:"location"`
	At         time.Time `json:"at"`
}
