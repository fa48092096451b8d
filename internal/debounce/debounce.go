// Package debounce coalesces bursts of calls into a single delayed
// invocation: only the last call within any quiescence window fires, with
// that call's argument.
package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a handler behind a cancel-and-reschedule timer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(string)
	timer *time.Timer
}

// New builds a Debouncer that invokes fn once per quiescence window.
func New(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call resets the pending timer. If no further call arrives within the
// window, fn runs with this call's argument on a timer goroutine.
func (d *Debouncer) Call(arg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(arg) })
}

// Stop cancels any pending invocation. A Call after Stop re-arms the timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
