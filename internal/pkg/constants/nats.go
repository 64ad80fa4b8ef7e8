package constants

// NATS Subjects
const (
	// Match Service
	SubjectMatchFound  = "match.found"
	SubjectMatchFailed = "match.failed"

	// Ride lifecycle events
	SubjectRideOrdered   = "ride.ordered"
	SubjectRideStarted   = "ride.started"
	SubjectRideStopped   = "ride.stopped"
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideCompleted = "ride.completed"
	SubjectRidePanic     = "ride.panic"

	// Driver Service
	SubjectDriverShift    = "driver.shift"
	SubjectDriverLocation = "driver.location"
)
