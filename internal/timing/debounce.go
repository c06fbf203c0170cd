package timing

import (
	"time"

	"golang.org/x/time/rate"
)

// Debounce returns a trigger that runs fn only after d of quiet: every call
// pushes the pending run out by d. Used for resize handling and clearing
// form status while the visitor is still typing.
func Debounce(d time.Duration, fn func()) func() {
	var t Timer
	return func() {
		t.Schedule(d, fn)
	}
}

// Throttle returns a trigger that runs fn at most once per interval,
// dropping extra calls. Scroll handlers go through this so a fast wheel
// cannot flood the reveal logic.
func Throttle(interval time.Duration, fn func()) func() {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	return func() {
		if limiter.Allow() {
			fn()
		}
	}
}
