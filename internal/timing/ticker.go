package timing

import (
	"sync"
	"time"
)

// Ticker runs fn on a fixed interval with pause/resume semantics. Resume on
// a running ticker is a no-op: there is only ever one underlying timer, so a
// pause/resume cycle cannot stack a second interval on top of the first.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	t        *time.Ticker
	stop     chan struct{}
}

// NewTicker creates a stopped ticker; call Resume to start it.
func NewTicker(interval time.Duration, fn func()) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

// Resume starts ticking. No-op when already running or when the interval is
// not positive.
func (tk *Ticker) Resume() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.t != nil || tk.interval <= 0 {
		return
	}
	tk.t = time.NewTicker(tk.interval)
	tk.stop = make(chan struct{})
	go tk.loop(tk.t, tk.stop)
}

func (tk *Ticker) loop(t *time.Ticker, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			tk.fn()
		}
	}
}

// Pause stops ticking until the next Resume. Idempotent.
func (tk *Ticker) Pause() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.t == nil {
		return
	}
	tk.t.Stop()
	close(tk.stop)
	tk.t = nil
	tk.stop = nil
}

// Stop is Pause under a name that reads better at shutdown sites.
func (tk *Ticker) Stop() { tk.Pause() }

// Running reports whether the ticker is currently ticking.
func (tk *Ticker) Running() bool {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.t != nil
}
