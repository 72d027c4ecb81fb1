package entity

import "math"

// Never is the far-past sentinel for timestamps that must never satisfy a
// "now - t <= window" check.
var Never = math.Inf(-1)

// Clock is the absolute simulation clock in seconds.
// It only moves forward and only when the logic tick advances it.
type Clock struct {
	now float64
}

// NewClock creates a clock starting at t
func NewClock(t float64) *Clock {
	return &Clock{now: t}
}

// Now returns the current time
func (c *Clock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.now
}

// Advance moves the clock forward by dt. Negative dt is ignored.
func (c *Clock) Advance(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.now += dt
}
