package models

import (
	"time"

	"github.com/google/uuid"
)

// Route is the path of a ride: an ordered sequence of at least two stops
// plus the estimate the routing provider produced for it. A route is owned
// by exactly one ride and is rewritten in place when the ride is stopped
// early.
type Route struct {
	RouteID              uuid.UUID `json:"route_id" db:"route_id"`
	Stops                []Stop    `json:"stops"`
	DistanceKm           float64   `json:"distance_km" db:"distance_km"`
	EstimatedTimeSeconds int       `json:"estimated_time_seconds" db:"estimated_time_seconds"`
	Geometry             string    `json:"geometry" db:"geometry"`
}

// Pickup returns the first stop of the route.
func (r *Route) Pickup() Stop {
	return r.Stops[0]
}

// Destination returns the last stop of the route.
func (r *Route) Destination() Stop {
	return r.Stops[len(r.Stops)-1]
}

// Waypoints returns the interior stops between pickup and destination.
func (r *Route) Waypoints() []Stop {
	if len(r.Stops) <= 2 {
		return nil
	}
	return r.Stops[1 : len(r.Stops)-1]
}

// EstimatedDuration returns the routing estimate as a duration.
func (r *Route) EstimatedDuration() time.Duration {
	return time.Duration(r.EstimatedTimeSeconds) * time.Second
}

// Valid reports whether the route has enough stops to describe a ride.
func (r *Route) Valid() bool {
	return len(r.Stops) >= 2
}
