package nav

import (
	"sync"
	"time"
)

// RouteSyncDelay is how long the controller waits after a settled
// swipe before pushing the new position to the router. Rapid
// sequential swipes coalesce into a single route replacement.
const RouteSyncDelay = 75 * time.Millisecond

// Debouncer runs the most recent function after a quiet period.
// Scheduling a new call cancels any pending one; calls never stack.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given trailing delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the delay, replacing any pending
// call that has not fired yet.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
