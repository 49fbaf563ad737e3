// Package input turns noisy raw digital levels into debounced button state.
// It knows nothing about keyboards or GPIO registers: platforms provide a
// Source that reports the current raw level of a pin.
package input

// Level is the raw electrical level of a digital input.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// String returns "low" or "high".
func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Pin identifies a raw input line on a Source.
type Pin int

// NoPin marks an input with no assigned source. It never reads as pressed.
const NoPin Pin = -1

// Assigned reports whether p refers to a real input line.
func (p Pin) Assigned() bool {
	return p >= 0
}

// PinOf converts a configured pin number. Negative numbers mean unassigned.
func PinOf(n int) Pin {
	if n < 0 {
		return NoPin
	}
	return Pin(n)
}

// ActiveLevel returns the pressed level for the given wiring.
func ActiveLevel(activeLow bool) Level {
	if activeLow {
		return Low
	}
	return High
}

// Source reports the current raw level of a pin.
type Source interface {
	Level(pin Pin) Level
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(pin Pin) Level

// Level implements Source.
func (f SourceFunc) Level(pin Pin) Level {
	return f(pin)
}
