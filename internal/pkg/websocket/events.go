package websocket

// WebSocket event names.
const (
	// EventError carries an ErrorPayload back to the client.
	EventError = "error"
	// EventLocationUpdate is sent by drivers with a models.Location payload.
	EventLocationUpdate = "location.update"
	// EventMatchFound is pushed to a driver when the matcher assigns them
	// a ride. The payload is a models.MatchResult.
	EventMatchFound = "match.found"
)
