package timing

import (
	"sync"
	"time"
)

// Timer is a single-slot delayed call. Scheduling while a run is pending
// replaces the pending run, so a Timer can never fire twice for one slot —
// the handle doubles as the cancellation token for simulated async work.
type Timer struct {
	mu sync.Mutex
	t  *time.Timer
}

// Schedule arranges fn to run after d, cancelling any previously scheduled
// run. fn executes on its own goroutine.
func (tm *Timer) Schedule(d time.Duration, fn func()) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.t != nil {
		tm.t.Stop()
	}
	tm.t = time.AfterFunc(d, func() {
		tm.mu.Lock()
		tm.t = nil
		tm.mu.Unlock()
		fn()
	})
}

// Stop cancels the pending run, if any. Reports whether a run was pending.
func (tm *Timer) Stop() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.t == nil {
		return false
	}
	stopped := tm.t.Stop()
	tm.t = nil
	return stopped
}

// Pending reports whether a run is scheduled and has not fired yet.
func (tm *Timer) Pending() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.t != nil
}
