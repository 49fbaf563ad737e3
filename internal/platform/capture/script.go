package capture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/games/pong"
	"github.com/vovakirdan/pocket-pong/internal/input"
	"github.com/vovakirdan/pocket-pong/internal/session"
)

// Hold keeps a button pressed for ticks [From, Until).
type Hold struct {
	Button core.Button
	From   int
	Until  int
}

// ParseHold parses "button@from-until" or "button@at". The short form holds
// the button for tap ticks, long enough to pass the debouncer.
func ParseHold(s string, tap int) (Hold, error) {
	name, span, ok := strings.Cut(s, "@")
	if !ok {
		return Hold{}, fmt.Errorf("capture: hold %q: expected button@tick", s)
	}
	b, ok := core.ParseButton(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Hold{}, fmt.Errorf("capture: hold %q: unknown button %q", s, name)
	}

	fromStr, untilStr, ranged := strings.Cut(span, "-")
	from, err := strconv.Atoi(fromStr)
	if err != nil || from < 0 {
		return Hold{}, fmt.Errorf("capture: hold %q: bad start tick", s)
	}
	until := from + max(tap, 1)
	if ranged {
		until, err = strconv.Atoi(untilStr)
		if err != nil || until <= from {
			return Hold{}, fmt.Errorf("capture: hold %q: bad end tick", s)
		}
	}
	return Hold{Button: b, From: from, Until: until}, nil
}

// Script is an input.Source replaying holds against the frame counter of a
// manual clock.
type Script struct {
	holds    []Hold
	pins     [core.ButtonCount]input.Pin
	active   input.Level
	clock    session.Clock
	interval time.Duration
}

// NewScript creates a script for cfg's pin assignment, reading the current
// tick from clock.
func NewScript(cfg config.PongConfig, clock session.Clock, holds []Hold) *Script {
	active := input.ActiveLevel(cfg.Input.ActiveLow)
	s := &Script{
		holds:    holds,
		active:   active,
		clock:    clock,
		interval: cfg.FrameInterval(),
	}
	s.pins[core.ButtonLeft] = input.PinOf(cfg.Input.Pins.Left)
	s.pins[core.ButtonRight] = input.PinOf(cfg.Input.Pins.Right)
	s.pins[core.ButtonConfirm] = input.PinOf(cfg.Input.Pins.Confirm)
	return s
}

// tick returns the index of the frame being run.
func (s *Script) tick() int {
	ms := s.interval.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(int64(s.clock.Now()) / ms)
}

// Level implements input.Source.
func (s *Script) Level(pin input.Pin) input.Level {
	if !pin.Assigned() {
		return !s.active
	}
	t := s.tick()
	for _, h := range s.holds {
		if s.pins[h.Button] == pin && t >= h.From && t < h.Until {
			return s.active
		}
	}
	return !s.active
}

// Result is what a headless run produced.
type Result struct {
	Recorder   *Recorder
	Controller *session.Controller
}

// Run plays ticks frames of a session driven by holds and records the last
// frame. Time comes from a manual clock, so runs are reproducible.
func Run(ctx context.Context, cfg config.PongConfig, holds []Hold, ticks int, store session.HighScoreStore, logger *log.Logger) (Result, error) {
	return RunFrom(ctx, cfg, nil, holds, ticks, store, logger)
}

// RunFrom is Run starting from scene instead of the title screen. A nil
// scene behaves like Run.
func RunFrom(ctx context.Context, cfg config.PongConfig, scene *pong.Snapshot, holds []Hold, ticks int, store session.HighScoreStore, logger *log.Logger) (Result, error) {
	clock := session.NewManualClock(0)
	rec := &Recorder{}
	c, err := session.NewController(cfg, session.Options{
		Display: rec,
		Store:   store,
		Source:  NewScript(cfg, clock, holds),
		Logger:  logger,
	})
	if err != nil {
		return Result{}, err
	}
	if scene != nil {
		c.Restore(*scene)
	}
	if err := session.NewLoop(c, clock, 0).RunTicks(ctx, ticks); err != nil {
		return Result{}, err
	}
	return Result{Recorder: rec, Controller: c}, nil
}
