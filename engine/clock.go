package engine

import "time"

// Clock measures frame deltas while running; stopped clocks report no elapsed time
type Clock struct {
	tp      TimeProvider
	running bool
	last    time.Time
}

func NewClock(tp TimeProvider) *Clock {
	return &Clock{tp: tp}
}

// Start resets the delta baseline so time spent stopped is never reported
func (c *Clock) Start() {
	c.running = true
	c.last = c.tp.Now()
}

func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool { return c.running }

// Delta returns seconds since the previous Delta or Start
func (c *Clock) Delta() float64 {
	if !c.running {
		return 0
	}
	now := c.tp.Now()
	d := now.Sub(c.last).Seconds()
	c.last = now
	return d
}
