package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
)

func TestManualClock(t *testing.T) {
	clock := NewManualClock(100)
	if clock.Now() != 100 {
		t.Fatalf("Now() = %d, expected 100", clock.Now())
	}

	if err := clock.Sleep(context.Background(), 16*time.Millisecond); err != nil {
		t.Fatalf("Sleep() error = %v", err)
	}
	clock.Advance(time.Second)
	if clock.Now() != 1116 {
		t.Errorf("Now() = %d, expected 1116", clock.Now())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clock.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep() on cancelled ctx = %v, expected context.Canceled", err)
	}
	if clock.Now() != 1116 {
		t.Error("cancelled Sleep must not advance the clock")
	}
}

func TestSystemClock(t *testing.T) {
	clock := SystemClock()
	first := clock.Now()
	if first < 0 {
		t.Fatalf("Now() = %d, expected non-negative", first)
	}

	if err := clock.Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("Sleep() error = %v", err)
	}
	if clock.Now() < first.Add(5*time.Millisecond) {
		t.Error("clock did not advance across Sleep")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := clock.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep() on cancelled ctx = %v, expected context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled Sleep should return immediately")
	}
}

func TestLoopRunTicks(t *testing.T) {
	display := &fakeDisplay{}
	c, err := NewController(config.DefaultPongConfig(), Options{Display: display})
	if err != nil {
		t.Fatal(err)
	}
	clock := NewManualClock(0)
	loop := NewLoop(c, clock, 0)

	if err := loop.RunTicks(context.Background(), 10); err != nil {
		t.Fatalf("RunTicks() error = %v", err)
	}
	if c.Ticks() != 10 || display.frames != 10 {
		t.Errorf("ticks=%d frames=%d, expected 10 each", c.Ticks(), display.frames)
	}
	if clock.Now() != core.Instant(160) {
		t.Errorf("clock = %d, expected 10 frames of 16ms", clock.Now())
	}
	if loop.Clock() != Clock(clock) {
		t.Error("Clock() should return the injected clock")
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	c, err := NewController(config.DefaultPongConfig(), Options{
		Display: DisplayFunc(func(int, int, int, int, []core.Color) error {
			frames++
			if frames == 25 {
				cancel()
			}
			return nil
		}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := NewLoop(c, NewManualClock(0), 20*time.Millisecond).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, expected clean stop", err)
	}
	if frames != 25 || c.Ticks() != 25 {
		t.Errorf("frames=%d ticks=%d, expected the loop to stop after 25", frames, c.Ticks())
	}
}

func TestLoopRunReturnsDisplayError(t *testing.T) {
	broken := errors.New("bus error")
	frames := 0
	c, err := NewController(config.DefaultPongConfig(), Options{
		Display: DisplayFunc(func(int, int, int, int, []core.Color) error {
			frames++
			if frames > 3 {
				return broken
			}
			return nil
		}),
	})
	if err != nil {
		t.Fatal(err)
	}

	err = NewLoop(c, NewManualClock(0), 0).Run(context.Background())
	if !errors.Is(err, ErrDisplay) || !errors.Is(err, broken) {
		t.Errorf("Run() error = %v, expected wrapped display failure", err)
	}
	if c.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected the loop to stop on the failing tick", c.Ticks())
	}
}

func TestLoopRunTicksCancelled(t *testing.T) {
	c, err := NewController(config.DefaultPongConfig(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewLoop(c, NewManualClock(0), 0).RunTicks(ctx, 100); !errors.Is(err, context.Canceled) {
		t.Errorf("RunTicks() error = %v, expected context.Canceled", err)
	}
	if err := NewLoop(c, NewManualClock(0), 0).Run(ctx); err != nil {
		t.Errorf("Run() on a cancelled ctx = %v, expected nil", err)
	}
}
