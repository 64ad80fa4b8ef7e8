package models

import "github.com/google/uuid"

// RideRequest is an order for a new ride: the requested route, the
// passenger's preferences and the full passenger list (orderer first).
type RideRequest struct {
	Route        Route           `json:"route"`
	Preferences  RidePreferences `json:"preferences"`
	PassengerIDs []uuid.UUID     `json:"passenger_ids"`
}

// PassengerCount returns the number of seats the request needs.
func (r RideRequest) PassengerCount() int {
	return len(r.PassengerIDs)
}

// RouteLeg is what the routing provider returns for a recomputed path.
type RouteLeg struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	Geometry        string `json:"geometry"`
}

// DistanceKm returns the leg distance in kilometers.
func (l RouteLeg) DistanceKm() float64 {
	return float64(l.DistanceMeters) / 1000.0
}
