package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/games/pong"
	"github.com/vovakirdan/pocket-pong/internal/input"
)

// Options wires the controller to its collaborators. Every field is optional:
// without a Display frames are composed but not shown, without a Store the
// high score starts at 0 and is never persisted, and without a Source no
// button is ever pressed.
type Options struct {
	Display Display
	Store   HighScoreStore
	Source  input.Source
	Logger  *log.Logger
}

// Controller owns one game session. It is driven by calling Tick once per
// frame from a single goroutine.
type Controller struct {
	cfg    config.PongConfig
	theme  pong.Theme
	game   *pong.Game
	fb     *core.Framebuffer
	opts   Options
	logger *log.Logger

	debouncer input.Debouncer
	buttons   [core.ButtonCount]*input.Button

	state       State
	highScore   int
	expandedHUD bool
	ticks       uint64
}

// NewController validates cfg, loads the high score and prepares the
// framebuffer. The controller starts on the title screen.
func NewController(cfg config.PongConfig, opts Options) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, fg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	active := input.ActiveLevel(cfg.Input.ActiveLow)

	c := &Controller{
		cfg:       cfg,
		theme:     pong.Theme{Background: bg, Foreground: fg},
		game:      pong.New(cfg),
		fb:        core.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height),
		opts:      opts,
		logger:    logger,
		debouncer: input.NewDebouncer(cfg.Input.DebounceSamples, cfg.LongPress()),
		state:     StateStart,
	}
	c.buttons[core.ButtonLeft] = input.NewButton(input.PinOf(cfg.Input.Pins.Left), active)
	c.buttons[core.ButtonRight] = input.NewButton(input.PinOf(cfg.Input.Pins.Right), active)
	c.buttons[core.ButtonConfirm] = input.NewButton(input.PinOf(cfg.Input.Pins.Confirm), active)

	if opts.Store != nil {
		c.highScore = max(opts.Store.LoadHighScore(), 0)
	}

	if cfg.Input.Pins.Confirm == 0 {
		logger.Warn("confirm button is on pin 0 (boot strap); do not hold it during reset")
	}
	logger.Debug("session ready", "high", c.highScore, "screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))

	return c, nil
}

// Tick runs one frame: sample inputs, apply the confirm transition, move the
// paddle, then render the title screen or step and render the game.
// Only a display failure returns an error.
func (c *Controller) Tick(now core.Instant) error {
	c.ticks++

	confirmed := false
	for _, b := range core.Buttons {
		if _, ok := c.debouncer.Sample(c.buttons[b], c.opts.Source, now); ok && b == core.ButtonConfirm {
			confirmed = true
		}
	}
	if confirmed {
		c.confirm()
	}

	left := c.buttons[core.ButtonLeft]
	right := c.buttons[core.ButtonRight]
	dx := 0
	if left.Pressed() {
		dx -= c.cfg.Paddle.Speed
	}
	if right.Pressed() {
		dx += c.cfg.Paddle.Speed
	}
	c.game.MovePaddle(dx)

	if c.state == StateStart {
		c.expandedHUD = false
		pong.RenderStart(c.fb, c.highScore, c.theme)
		return c.flush()
	}

	c.expandedHUD = c.debouncer.IsLongPress(left, now) || c.debouncer.IsLongPress(right, now)

	if c.state == StateRunning {
		res := c.game.Step()
		if res.Score.Hits > c.highScore {
			c.highScore = res.Score.Hits
			if c.opts.Store != nil {
				c.opts.Store.SaveHighScore(c.highScore)
			}
			c.logger.Info("new high score", "hits", c.highScore)
		}
		if res.Score.Misses >= c.cfg.Rules.FailLimit {
			c.logger.Info("failure limit reached", "hits", res.Score.Hits, "misses", res.Score.Misses)
			c.logger.Debug("final position", "hash", c.game.Snapshot().Hash(), "tick", c.ticks)
			c.setState(StateStart)
			c.game.Reset()
			return nil
		}
	}

	pong.RenderPlay(c.fb, c.game, pong.Scene{
		ExpandedHUD: c.expandedHUD,
		HighScore:   c.highScore,
		Paused:      c.state == StatePaused,
	}, c.theme)
	return c.flush()
}

// Restore puts the game in the position captured by snap and resumes play
// from there, whatever the current mode.
func (c *Controller) Restore(snap pong.Snapshot) {
	c.game.ApplySnapshot(snap)
	c.logger.Debug("restored position", "hash", c.game.Snapshot().Hash())
	if c.state != StateRunning {
		c.setState(StateRunning)
	}
}

// confirm applies the confirm-button transition.
func (c *Controller) confirm() {
	switch c.state {
	case StateStart:
		c.game.Reset()
		c.setState(StateRunning)
	case StateRunning:
		c.setState(StatePaused)
	case StatePaused:
		c.setState(StateRunning)
	}
}

func (c *Controller) setState(s State) {
	c.logger.Debug("state", "from", c.state, "to", s, "tick", c.ticks)
	c.state = s
}

// flush pushes the framebuffer to the display.
func (c *Controller) flush() error {
	if c.opts.Display == nil || c.fb == nil {
		return nil
	}
	if err := c.opts.Display.DrawBitmap(0, 0, c.fb.Width(), c.fb.Height(), c.fb.Pixels()); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	return nil
}

// State returns the current mode.
func (c *Controller) State() State {
	return c.state
}

// HighScore returns the best hit count seen, including the loaded value.
func (c *Controller) HighScore() int {
	return c.highScore
}

// ExpandedHUD reports whether the last frame showed the high score line.
func (c *Controller) ExpandedHUD() bool {
	return c.expandedHUD
}

// Ticks returns how many times Tick has run.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Game returns the underlying game.
func (c *Controller) Game() *pong.Game {
	return c.game
}

// Framebuffer returns the frame composed by the last Tick.
func (c *Controller) Framebuffer() *core.Framebuffer {
	return c.fb
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.PongConfig {
	return c.cfg
}

// Pin returns the input line assigned to b, or input.NoPin.
func (c *Controller) Pin(b core.Button) input.Pin {
	if b < 0 || b >= core.ButtonCount {
		return input.NoPin
	}
	return c.buttons[b].Pin()
}

// Theme returns the parsed colors used for rendering.
func (c *Controller) Theme() pong.Theme {
	return c.theme
}
