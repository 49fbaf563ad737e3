package session

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// Clock supplies the tick clock and the inter-frame delay.
type Clock interface {
	Now() core.Instant
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct {
	start time.Time
}

// SystemClock returns a clock backed by the monotonic wall clock, reading 0
// at the moment it is created.
func SystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() core.Instant {
	return core.InstantOf(time.Since(c.start))
}

func (c *systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ManualClock is a Clock that only moves when told to. Sleep advances it
// instantly, so a loop driven by it runs as fast as the CPU allows while
// observing exact frame timing. Safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now core.Instant
}

// NewManualClock creates a manual clock reading start.
func NewManualClock(start core.Instant) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() core.Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Sleep implements Clock.
func (c *ManualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Advance(d)
	return nil
}

// Loop drives a Controller at a fixed frame interval: Tick, then sleep.
type Loop struct {
	controller *Controller
	clock      Clock
	interval   time.Duration
}

// NewLoop creates a loop for c. A nil clock uses SystemClock and a
// non-positive interval uses the controller's configured frame interval.
func NewLoop(c *Controller, clock Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = SystemClock()
	}
	if interval <= 0 {
		interval = c.Config().FrameInterval()
	}
	return &Loop{controller: c, clock: clock, interval: interval}
}

// Run ticks until ctx is cancelled or the display fails. Cancellation is a
// clean stop and returns nil; a display failure is returned wrapped in
// ErrDisplay.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// RunTicks runs exactly n frames unless ctx is cancelled or the display
// fails first.
func (l *Loop) RunTicks(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := l.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) step(ctx context.Context) error {
	if err := l.controller.Tick(l.clock.Now()); err != nil {
		return err
	}
	return l.clock.Sleep(ctx, l.interval)
}

// Clock returns the clock driving the loop.
func (l *Loop) Clock() Clock {
	return l.clock
}
