package cell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/session"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellStyle(top, bottom core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
}

func TestTerminalDrawBitmap(t *testing.T) {
	screen := newScreen(t, 10, 10)
	term := NewTerminal(screen, core.ColorBlack, 1)

	px := make([]core.Color, 4*3)
	px[0] = core.ColorWhite
	px[2*4+3] = core.ColorRed
	if err := term.DrawBitmap(0, 0, 4, 3, px); err != nil {
		t.Fatalf("DrawBitmap() error = %v", err)
	}

	tests := []struct {
		name     string
		x, y     int
		expected tcell.Style
	}{
		{"lit top", 0, 0, cellStyle(core.ColorWhite, core.ColorBlack)},
		{"dark", 1, 0, cellStyle(core.ColorBlack, core.ColorBlack)},
		{"odd row padded", 3, 1, cellStyle(core.ColorRed, core.ColorBlack)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, style, _ := screen.GetContent(tt.x, tt.y)
			if r != halfBlock {
				t.Errorf("rune = %q, expected %q", r, halfBlock)
			}
			if style != tt.expected {
				t.Errorf("style = %v, expected %v", style, tt.expected)
			}
		})
	}

	if r, _, _, _ := screen.GetContent(4, 0); r == halfBlock {
		t.Error("cell right of the frame should be untouched")
	}
	if r, _, _, _ := screen.GetContent(0, 2); r == halfBlock {
		t.Error("cell below the frame should be untouched")
	}
}

func TestTerminalAutoScaleClips(t *testing.T) {
	screen := newScreen(t, 3, 2)
	term := NewTerminal(screen, core.ColorBlack, 0)

	// 12x8 into 3x2 cells needs scale 4: 3x2 pixels, one cell row.
	px := make([]core.Color, 12*8)
	px[7*12+11] = core.ColorWhite
	if err := term.DrawBitmap(0, 0, 12, 8, px); err != nil {
		t.Fatalf("DrawBitmap() error = %v", err)
	}

	_, _, style, _ := screen.GetContent(2, 0)
	if style != cellStyle(core.ColorBlack, core.ColorWhite) {
		t.Errorf("corner style = %v, expected the lit pixel in the bottom half", style)
	}
	if r, _, _, _ := screen.GetContent(0, 1); r == halfBlock {
		t.Error("second row should be unused at scale 4")
	}
}

func TestTerminalRejectsShortBitmap(t *testing.T) {
	term := NewTerminal(newScreen(t, 10, 10), core.ColorBlack, 1)
	if err := term.DrawBitmap(0, 0, 4, 4, make([]core.Color, 3)); err == nil {
		t.Error("DrawBitmap() with a short buffer should fail")
	}
	if err := term.DrawBitmap(0, 0, 0, 0, nil); err != nil {
		t.Errorf("DrawBitmap() of an empty rect = %v, expected nil", err)
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		action Action
		button core.Button
	}{
		{"esc", tcell.KeyEscape, 0, ActionQuit, 0},
		{"ctrl+c", tcell.KeyCtrlC, 0, ActionQuit, 0},
		{"q", tcell.KeyRune, 'q', ActionQuit, 0},
		{"left", tcell.KeyLeft, 0, ActionButton, core.ButtonLeft},
		{"a", tcell.KeyRune, 'a', ActionButton, core.ButtonLeft},
		{"right", tcell.KeyRight, 0, ActionButton, core.ButtonRight},
		{"l", tcell.KeyRune, 'l', ActionButton, core.ButtonRight},
		{"enter", tcell.KeyEnter, 0, ActionButton, core.ButtonConfirm},
		{"space", tcell.KeyRune, ' ', ActionButton, core.ButtonConfirm},
		{"other rune", tcell.KeyRune, 'z', ActionNone, 0},
		{"other key", tcell.KeyF1, 0, ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, button := KeyAction(tt.key, tt.r)
			if action != tt.action || button != tt.button {
				t.Errorf("KeyAction() = %v, %v, expected %v, %v", action, button, tt.action, tt.button)
			}
		})
	}
}

type countingStore struct {
	loads int
}

func (s *countingStore) LoadHighScore() int { s.loads++; return 3 }
func (s *countingStore) SaveHighScore(int)  {}

func TestRunStopsOnCancel(t *testing.T) {
	store := &countingStore{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Run(ctx, config.DefaultPongConfig(), Options{
		Store:  store,
		Clock:  session.NewManualClock(0),
		Screen: tcell.NewSimulationScreen("UTF-8"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v, expected clean stop", err)
	}
	if store.loads != 1 {
		t.Errorf("LoadHighScore called %d times, expected 1", store.loads)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Ball.BaseSpeed = 0
	err := Run(context.Background(), cfg, Options{Screen: tcell.NewSimulationScreen("UTF-8")})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Run() error = %v, expected config.ErrInvalid", err)
	}
}
