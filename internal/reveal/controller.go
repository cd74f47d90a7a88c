// Package reveal implements the timed show/hide state machine for the
// budget figure: a toggle exposes the amount, and a one-shot timer masks
// it again after a fixed window unless the user hides it first.
package reveal

import (
	"sync"
	"time"
)

// RevealWindow is how long the budget stays visible before auto-hiding.
const RevealWindow = 5 * time.Second

// Controller owns the reveal state for one project panel. At most one
// auto-hide timer is outstanding at any instant: scheduling a new one
// always cancels the previous, and a stale timer that already fired is
// ignored via the generation counter.
type Controller struct {
	mu       sync.Mutex
	revealed bool
	timer    *time.Timer
	gen      uint64
	delay    time.Duration
	hides    chan struct{}
	closed   bool
}

// NewController returns a hidden controller with the standard window.
func NewController() *Controller {
	return NewControllerWithDelay(RevealWindow)
}

// NewControllerWithDelay returns a hidden controller with a custom
// auto-hide delay. Tests use short delays; production code uses
// NewController.
func NewControllerWithDelay(delay time.Duration) *Controller {
	return &Controller{
		delay: delay,
		hides: make(chan struct{}, 1),
	}
}

// Toggle flips the reveal state and returns the new state. Revealing
// schedules the auto-hide timer; hiding cancels any pending timer.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.revealed
	}

	c.cancelLocked()

	c.revealed = !c.revealed
	if c.revealed {
		gen := c.gen
		c.timer = time.AfterFunc(c.delay, func() { c.autoHide(gen) })
	}
	return c.revealed
}

// Revealed reports whether the budget is currently visible.
func (c *Controller) Revealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed
}

// Hides returns the channel signaled when the auto-hide timer masks the
// budget, so the UI can re-render. The channel is buffered; only the
// latest auto-hide matters.
func (c *Controller) Hides() <-chan struct{} {
	return c.hides
}

// Close cancels any pending timer. The controller stays hidden and inert
// afterward; closing twice is safe.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.revealed = false
	c.closed = true
}

// cancelLocked invalidates the outstanding timer, if any. Stopping a
// timer that already fired is harmless: the generation bump makes its
// callback a no-op.
func (c *Controller) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) autoHide(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || !c.revealed {
		c.mu.Unlock()
		return
	}
	c.revealed = false
	c.timer = nil
	c.mu.Unlock()

	select {
	case c.hides <- struct{}{}:
	default:
	}
}
