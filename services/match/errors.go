package match

import "errors"

// ErrNoSuitableDrivers is returned when matching exhausted every
// candidate without finding an eligible driver.
var ErrNoSuitableDrivers = errors.New("no suitable drivers available")
