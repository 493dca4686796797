package engine

import "time"

// Debouncer runs the last triggered function once its delay passes without another trigger
type Debouncer struct {
	sched  Scheduler
	delay  time.Duration
	cancel func()
}

func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{sched: sched, delay: delay}
}

// Trigger supersedes any pending call
func (d *Debouncer) Trigger(fn func()) {
	d.Cancel()
	d.cancel = d.sched.AfterFunc(d.delay, func() {
		d.cancel = nil
		fn()
	})
}

// Cancel drops the pending call, if any
func (d *Debouncer) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer) Pending() bool { return d.cancel != nil }
