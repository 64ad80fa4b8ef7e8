package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

func TestPriceList_PriceFor(t *testing.T) {
	list := models.PriceList{
		StandardBase: 100,
		LuxuryBase:   250,
		VanBase:      180,
		KmPrice:      50,
	}

	tests := []struct {
		name       string
		category   models.VehicleCategory
		distanceKm float64
		want       float64
	}{
		{"standard", models.VehicleStandard, 3.5, 275},
		{"luxury", models.VehicleLuxury, 3.5, 425},
		{"van", models.VehicleVan, 3.5, 355},
		{"zero distance is base only", models.VehicleStandard, 0, 100},
		{"unknown category falls back to standard", models.VehicleCategory("TRUCK"), 3.5, 275},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list.PriceFor(tt.category, tt.distanceKm))
		})
	}
}

func TestPriceList_PriceForIsPure(t *testing.T) {
	list := models.PriceList{StandardBase: 100, KmPrice: 50}

	first := list.PriceFor(models.VehicleStandard, 12.4)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, list.PriceFor(models.VehicleStandard, 12.4))
	}
}
