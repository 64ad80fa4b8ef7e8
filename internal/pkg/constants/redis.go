package constants

// Redis key formats
const (
	// Driver Service
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo      = "drivers:locations"  // Geo set of all live driver locations
	KeyDriverGeohash  = "driver:geohash:%s"  // Format: driver:geohash:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
