// Package cell draws Pong straight onto a tcell screen, without the Bubble
// Tea runtime. Each terminal cell shows two pixels using an upper half-block.
package cell

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/input"
	"github.com/vovakirdan/pocket-pong/internal/session"
)

const halfBlock = '▀'

// Terminal is a session.Display backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	bg     core.Color
	scale  int
}

// NewTerminal draws onto screen. bg fills cells below a frame with an odd
// pixel height. A scale of 0 fits the frame to the screen on every draw.
func NewTerminal(screen tcell.Screen, bg core.Color, scale int) *Terminal {
	return &Terminal{screen: screen, bg: bg, scale: max(scale, 0)}
}

func toTcell(c core.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// DrawBitmap implements session.Display. The rectangle is placed relative to
// the top-left cell, shrunk by the current scale.
func (t *Terminal) DrawBitmap(x, y, w, h int, pixels []core.Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(pixels) < w*h {
		return fmt.Errorf("cell: short bitmap: %d pixels for %dx%d", len(pixels), w, h)
	}

	cols, rows := t.screen.Size()
	scale := t.scale
	if scale == 0 {
		scale = core.FitScale(w, h, cols, rows)
	}
	px, pw, ph := core.Downsample(pixels, w, h, scale, t.bg)
	ox, oy := x/scale, y/scale/2

	for py := 0; py < ph; py += 2 {
		row := oy + py/2
		if row >= rows {
			break
		}
		for px0 := 0; px0 < pw; px0++ {
			col := ox + px0
			if col >= cols {
				break
			}
			top, bottom := core.HalfBlockCell(px, pw, ph, px0, py, t.bg)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Action is what a key does in a session.
type Action int

const (
	ActionNone Action = iota
	ActionButton
	ActionQuit
)

// KeyAction maps a tcell key to its action. For ActionButton the button is
// also returned.
func KeyAction(k tcell.Key, r rune) (Action, core.Button) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyLeft:
		return ActionButton, core.ButtonLeft
	case tcell.KeyRight:
		return ActionButton, core.ButtonRight
	case tcell.KeyEnter:
		return ActionButton, core.ButtonConfirm
	case tcell.KeyRune:
		switch r {
		case 'q':
			return ActionQuit, 0
		case 'a', 'h':
			return ActionButton, core.ButtonLeft
		case 'd', 'l':
			return ActionButton, core.ButtonRight
		case ' ', 'p':
			return ActionButton, core.ButtonConfirm
		}
	}
	return ActionNone, 0
}

// Options configures Run. Every field is optional.
type Options struct {
	Store  session.HighScoreStore
	Logger *log.Logger
	Scale  int
	Clock  session.Clock
	// Screen replaces the real terminal, for example with a simulation screen.
	Screen tcell.Screen
}

// Run plays a session on a tcell screen until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, cfg config.PongConfig, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("cell: cannot create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cell: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	bg, _, err := cfg.Colors()
	if err != nil {
		return err
	}

	clock := opts.Clock
	if clock == nil {
		clock = session.SystemClock()
	}
	active := input.ActiveLevel(cfg.Input.ActiveLow)
	holds := input.NewHoldSource(cfg.KeyHold(), active, clock.Now)

	c, err := session.NewController(cfg, session.Options{
		Display: NewTerminal(screen, bg, opts.Scale),
		Store:   opts.Store,
		Source:  holds,
		Logger:  opts.Logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollEvents(screen, c, holds, cancel)

	return session.NewLoop(c, clock, 0).Run(ctx)
}

// pollEvents feeds key presses into holds until the screen is finalized.
func pollEvents(screen tcell.Screen, c *session.Controller, holds *input.HoldSource, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Clear()
			screen.Sync()
		case *tcell.EventKey:
			switch action, b := KeyAction(ev.Key(), ev.Rune()); action {
			case ActionQuit:
				quit()
			case ActionButton:
				holds.Press(c.Pin(b))
			}
		}
	}
}
