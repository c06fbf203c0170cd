package booking

import "errors"

var (
	ErrSubmitInFlight = errors.New("submission already in flight")
)
