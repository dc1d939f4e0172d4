// Package view holds the client-visible list and form state machines of the
// admin console: debounced search filtering, the image gallery with its drag
// reorder protocol, and upload in-flight tracking. Nothing in this package
// touches the store; it only shapes what the user currently sees.
package view

import (
	"sync"
	"time"
)

// Debouncer defers an action until a quiet period has elapsed. Each Trigger
// re-arms a single-shot timer and cancels the previously armed one, so a
// burst of triggers runs the action exactly once, with the last payload.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay: delay,
	}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously scheduled run that has not fired yet.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
