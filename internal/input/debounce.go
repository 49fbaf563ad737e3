package input

import (
	"time"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// Default debounce settings for the handheld buttons.
const (
	DefaultDebounceSamples = 3
	DefaultLongPress       = 800 * time.Millisecond
)

// PressEvent is emitted when a button's stable level becomes active.
type PressEvent struct {
	Pin Pin
	At  core.Instant
}

// Button holds the debounce state of one physical input. One instance lives
// for the whole process and is mutated only by Debouncer.Update.
type Button struct {
	pin          Pin
	active       Level
	stable       Level
	last         Level
	count        int
	pressedSince core.Instant
}

// NewButton creates a button on pin whose pressed state reads as active.
// Stable and last-observed levels start released, so a button held at boot
// only reports a press after a full debounce cycle.
func NewButton(pin Pin, active Level) *Button {
	return &Button{
		pin:    pin,
		active: active,
		stable: !active,
		last:   !active,
	}
}

// Pin returns the raw input line this button samples.
func (b *Button) Pin() Pin {
	return b.pin
}

// Enabled reports whether the button has an assigned pin.
func (b *Button) Enabled() bool {
	return b != nil && b.pin.Assigned()
}

// Pressed reports whether the debounced level is the active level.
// Always false for a disabled button.
func (b *Button) Pressed() bool {
	return b.Enabled() && b.stable == b.active
}

// Stable returns the current debounced level.
func (b *Button) Stable() Level {
	return b.stable
}

// PressedSince returns the instant of the last transition into pressed.
func (b *Button) PressedSince() core.Instant {
	return b.pressedSince
}

// Debouncer applies the debounce and long-press rules to buttons.
type Debouncer struct {
	// Samples is how many consecutive identical raw samples commit a level.
	Samples int
	// LongPress is how long a button must be held to count as a long press.
	LongPress time.Duration
}

// NewDebouncer creates a debouncer with the given thresholds.
// A negative sample count is treated as zero.
func NewDebouncer(samples int, longPress time.Duration) Debouncer {
	if samples < 0 {
		samples = 0
	}
	return Debouncer{Samples: samples, LongPress: longPress}
}

// Update feeds one raw sample into b. It returns a PressEvent exactly once per
// debounced transition into the active level.
func (d Debouncer) Update(b *Button, raw Level, now core.Instant) (PressEvent, bool) {
	if !b.Enabled() {
		return PressEvent{}, false
	}

	if raw != b.last {
		b.last = raw
		b.count = 0
	} else if b.count < d.Samples {
		b.count++
	}

	// Edge-triggered: the count sits at the threshold while the level holds,
	// but the stable level only moves once.
	if b.count == d.Samples && raw != b.stable {
		b.stable = raw
		if raw == b.active {
			b.pressedSince = now
			return PressEvent{Pin: b.pin, At: now}, true
		}
	}
	return PressEvent{}, false
}

// Sample reads b's pin from src and feeds it to Update.
// A nil source reads as released.
func (d Debouncer) Sample(b *Button, src Source, now core.Instant) (PressEvent, bool) {
	if !b.Enabled() {
		return PressEvent{}, false
	}
	raw := !b.active
	if src != nil {
		raw = src.Level(b.pin)
	}
	return d.Update(b, raw, now)
}

// IsLongPress reports whether b is currently pressed and has been held for
// at least the long-press threshold. It is a query, re-evaluated every tick.
// A non-positive threshold disables long presses.
func (d Debouncer) IsLongPress(b *Button, now core.Instant) bool {
	if !b.Pressed() || d.LongPress <= 0 {
		return false
	}
	return now.Sub(b.pressedSince) >= d.LongPress
}
