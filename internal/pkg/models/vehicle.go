package models

// VehicleCategory is the fare class of a vehicle
type VehicleCategory string

const (
	VehicleStandard VehicleCategory = "STANDARD"
	VehicleLuxury   VehicleCategory = "LUXURY"
	VehicleVan      VehicleCategory = "VAN"
)

// Known reports whether the category is one of the fixed enumeration.
func (c VehicleCategory) Known() bool {
	switch c {
	case VehicleStandard, VehicleLuxury, VehicleVan:
		return true
	}
	return false
}

// VehicleSpec describes what a driver's vehicle can take on.
type VehicleSpec struct {
	Category     VehicleCategory `json:"category" db:"category"`
	Seats        int             `json:"seats" db:"seats"`
	PetFriendly  bool            `json:"pet_friendly" db:"pet_friendly"`
	BabyFriendly bool            `json:"baby_friendly" db:"baby_friendly"`
}

// Fits reports whether the vehicle satisfies the requested preferences and
// passenger count.
func (v VehicleSpec) Fits(prefs RidePreferences, passengers int) bool {
	if v.Category != prefs.VehicleCategory {
		return false
	}
	if v.Seats < passengers {
		return false
	}
	if prefs.PetFriendly && !v.PetFriendly {
		return false
	}
	if prefs.BabyFriendly && !v.BabyFriendly {
		return false
	}
	return true
}
