package carousel

import (
	"sync"
	"time"
)

// DefaultResizeDelay is how long the viewport must stay still before a
// resize is applied
const DefaultResizeDelay = 100 * time.Millisecond

// Debouncer holds back resize handling while the viewport is still
// changing. Only the most recent apply runs, once delay has passed
// without another resize.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	apply func()
}

// NewDebouncer returns a Debouncer that waits delay after the last resize
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Debounce records apply as the pending resize handler and restarts the
// wait. Earlier pending handlers are dropped.
func (d *Debouncer) Debounce(apply func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.apply = apply
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.fire)
		return
	}
	d.timer.Stop()
	d.timer.Reset(d.delay)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	apply := d.apply
	d.apply = nil
	d.mu.Unlock()

	if apply != nil {
		apply()
	}
}

// Cancel discards the pending handler; used when the session ends
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.apply = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}
