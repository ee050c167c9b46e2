// Package clock provides the monotonic time source used by the frame
// scheduler and a rolling frames-per-second estimator.
package clock

import (
	"sync"
	"time"
)

// Clock is a monotonic time source with a blocking sleep.
type Clock interface {
	// Now returns seconds elapsed since an arbitrary fixed origin.
	Now() float64
	// Sleep blocks for roughly d.
	Sleep(d time.Duration)
}

// System is a Clock backed by the Go runtime's monotonic clock.
type System struct {
	start time.Time
}

// NewSystem creates a system clock whose origin is the moment of the call.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns seconds since the clock was created.
func (c *System) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Sleep blocks the calling goroutine for d.
func (c *System) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Manual is a Clock that only moves when told to. With AutoAdvance set,
// Sleep moves the clock forward by the requested duration instead of blocking.
type Manual struct {
	mu          sync.Mutex
	now         float64
	slept       time.Duration
	sleeps      int
	AutoAdvance bool
}

// NewManual creates a manual clock positioned at start seconds.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (c *Manual) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t seconds.
func (c *Manual) Set(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d seconds.
func (c *Manual) Advance(d float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}

// Sleep records the request and, with AutoAdvance, moves the clock forward.
func (c *Manual) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps++
	c.slept += d
	if c.AutoAdvance {
		c.now += d.Seconds()
	}
}

// Slept returns the number of Sleep calls and their total duration.
func (c *Manual) Slept() (int, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sleeps, c.slept
}
