package models

// Location represents a geographical point
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Stop is a single point on a route: a display address plus its coordinates.
// The first stop of a route is the pickup, the last the destination.
type Stop struct {
	Address  string   `json:"address"`
	Location Location `json:"location"`
}
