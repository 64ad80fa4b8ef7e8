package models

import (
	"time"

	"github.com/google/uuid"
)

// PriceList is a versioned fare table: one base price per vehicle
// category plus a shared per-kilometer rate. Lists are never updated in
// place; a new list supersedes older ones by created_at.
type PriceList struct {
	PriceListID  uuid.UUID `json:"price_list_id" db:"price_list_id"`
	StandardBase float64   `json:"standard_base" db:"standard_base"`
	LuxuryBase   float64   `json:"luxury_base" db:"luxury_base"`
	VanBase      float64   `json:"van_base" db:"van_base"`
	KmPrice      float64   `json:"km_price" db:"km_price"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BaseFor returns the base price for the category. Unrecognized
// categories fall back to the STANDARD base.
func (p PriceList) BaseFor(category VehicleCategory) float64 {
	switch category {
	case VehicleLuxury:
		return p.LuxuryBase
	case VehicleVan:
		return p.VanBase
	default:
		return p.StandardBase
	}
}

// PriceFor computes the fare for a trip of the given distance. The
// computation is pure: the same list, category and distance always yield
// the same price.
func (p PriceList) PriceFor(category VehicleCategory, distanceKm float64) float64 {
	return p.BaseFor(category) + distanceKm*p.KmPrice
}
