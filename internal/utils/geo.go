package utils

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance calculates the straight-line distance between two
// points in kilometers using the Haversine formula. Road distance is
// deliberately not used here: proximity ranking only needs a cheap
// first-pass metric over already-eligible candidates.
func CalculateDistance(a, b models.Location) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// Ranked pairs an ID with its distance from a reference point.
type Ranked struct {
	ID       string
	Distance float64
}

// SortByDistance orders entries by ascending distance, breaking ties by
// ID ascending so that ranking is deterministic.
func SortByDistance(entries []Ranked) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Distance != entries[j].Distance {
			return entries[i].Distance < entries[j].Distance
		}
		return entries[i].ID < entries[j].ID
	})
}
