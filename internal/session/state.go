// Package session runs the pong state machine: it samples the buttons every
// tick, moves the paddle, advances the game, keeps the high score and pushes
// a freshly composed frame to the display.
package session

import (
	"errors"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// State is the controller's top-level mode.
type State int

const (
	StateStart State = iota
	StateRunning
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ErrDisplay wraps every failure reported by a Display.
var ErrDisplay = errors.New("session: display failed")

// Display receives complete frames. DrawBitmap returns once the pixels have
// been handed off; the slice is only valid for the duration of the call.
type Display interface {
	DrawBitmap(x, y, w, h int, pixels []core.Color) error
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(x, y, w, h int, pixels []core.Color) error

// DrawBitmap implements Display.
func (f DisplayFunc) DrawBitmap(x, y, w, h int, pixels []core.Color) error {
	return f(x, y, w, h, pixels)
}

// HighScoreStore persists the best hit count. Load returns 0 when nothing is
// stored or storage is unavailable; Save is best-effort.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}
