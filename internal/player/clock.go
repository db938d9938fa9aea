package player

import (
	"sync"
	"time"
)

// Clock reports the current playback position in seconds.
type Clock interface {
	CurrentTime() float64
}

// ClockOption configures a WallClock.
type ClockOption func(*WallClock)

// WithNow replaces the time source, mainly for tests.
func WithNow(now func() time.Time) ClockOption {
	return func(c *WallClock) {
		c.now = now
	}
}

// WallClock is a pausable playback clock driven by wall time.
//
// It stands in for an audio element: it starts at zero, advances in real
// time and stops advancing while paused. It cannot seek.
type WallClock struct {
	now func() time.Time

	mu      sync.Mutex
	started bool
	paused  bool
	start   time.Time
	elapsed time.Duration // accumulated before the current run
}

// NewWallClock creates a stopped clock at position zero.
func NewWallClock(opts ...ClockOption) *WallClock {
	c := &WallClock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins playback from zero. Calling Start again restarts the clock.
func (c *WallClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.started = true
	c.paused = false
	c.elapsed = 0
	c.start = c.now()
}

// Pause freezes the position. It is a no-op if the clock is not running.
func (c *WallClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.paused {
		return
	}
	c.elapsed += c.now().Sub(c.start)
	c.paused = true
}

// Resume continues from the paused position.
func (c *WallClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || !c.paused {
		return
	}
	c.start = c.now()
	c.paused = false
}

// Toggle pauses a running clock or resumes a paused one.
func (c *WallClock) Toggle() {
	if c.Paused() {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Paused reports whether the clock is paused.
func (c *WallClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Started reports whether Start has been called.
func (c *WallClock) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// CurrentTime returns the playback position in seconds.
func (c *WallClock) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return 0
	}
	d := c.elapsed
	if !c.paused {
		d += c.now().Sub(c.start)
	}
	return d.Seconds()
}
