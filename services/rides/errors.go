package rides

import "errors"

var (
	// ErrRideNotFound is returned when no ride matches the lookup, or the
	// acting user has no current ride.
	ErrRideNotFound = errors.New("ride not found")

	// ErrAccessDenied is returned when the acting user is not allowed to
	// perform the operation on this ride.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState is returned when the ride is not in a status the
	// requested transition departs from.
	ErrInvalidState = errors.New("ride is not in a valid state for this operation")

	// ErrDriverConflict is returned when the matched driver gained a
	// conflicting ride between matching and commit.
	ErrDriverConflict = errors.New("driver already holds a conflicting ride")

	// ErrInvalidRoute is returned when the requested route has fewer than
	// two stops.
	ErrInvalidRoute = errors.New("route must have at least two stops")

	// ErrRouteGeometryMissing is returned when rerouting produced no
	// usable geometry or a non-positive distance.
	ErrRouteGeometryMissing = errors.New("recomputed route has no usable geometry")

	// ErrGeocodeFailed is returned when the stop location could not be
	// resolved to an address within the retry budget.
	ErrGeocodeFailed = errors.New("failed to resolve address for location")
)
