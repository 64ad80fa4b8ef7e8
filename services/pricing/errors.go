package pricing

import "errors"

// ErrNoPriceList is returned when no price list has ever been created.
var ErrNoPriceList = errors.New("no price list available")
