package drivers

import "errors"

// ErrDriverNotFound is returned when no driver matches the lookup.
var ErrDriverNotFound = errors.New("driver not found")
