package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// DefaultKeyHold is how long a key event keeps its pin asserted.
const DefaultKeyHold = 250 * time.Millisecond

// HoldSource is a Source fed by discrete key events instead of pin levels.
// Terminals report key presses (and auto-repeat) but never key releases, so a
// press keeps its pin at the active level for a hold window; repeats extend it.
//
// Press and Level may be called from different goroutines.
type HoldSource struct {
	mu     sync.Mutex
	hold   time.Duration
	active Level
	now    func() core.Instant
	seen   map[Pin]core.Instant
}

// NewHoldSource creates a source that holds each press for hold, reading
// time from now.
func NewHoldSource(hold time.Duration, active Level, now func() core.Instant) *HoldSource {
	return &HoldSource{
		hold:   hold,
		active: active,
		now:    now,
		seen:   make(map[Pin]core.Instant),
	}
}

// Press asserts pin starting now. Unassigned pins are ignored.
func (s *HoldSource) Press(pin Pin) {
	if !pin.Assigned() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[pin] = s.now()
}

// Level implements Source.
func (s *HoldSource) Level(pin Pin) Level {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.seen[pin]
	if !ok {
		return !s.active
	}
	if s.now().Sub(at) >= s.hold {
		delete(s.seen, pin)
		return !s.active
	}
	return s.active
}
