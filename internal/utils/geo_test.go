package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
)

func TestCalculateDistance(t *testing.T) {
	trgRepublike := models.Location{Latitude: 44.8163, Longitude: 20.4603}
	slavija := models.Location{Latitude: 44.8024, Longitude: 20.4660}

	d := utils.CalculateDistance(trgRepublike, slavija)

	// Roughly 1.6 km across central Belgrade.
	assert.InDelta(t, 1.6, d, 0.2)

	assert.Zero(t, utils.CalculateDistance(slavija, slavija))
}

func TestSortByDistance(t *testing.T) {
	entries := []utils.Ranked{
		{ID: "c", Distance: 2.5},
		{ID: "b", Distance: 1.0},
		{ID: "a", Distance: 1.0},
	}

	utils.SortByDistance(entries)

	// Equal distances order by ID so ranking is deterministic.
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 44.8163, Longitude: 20.4603}

	hash := utils.EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	lat, lon := utils.DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.01)
	assert.InDelta(t, loc.Longitude, lon, 0.01)
}
