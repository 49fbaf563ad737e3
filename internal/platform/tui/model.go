package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/input"
	"github.com/vovakirdan/pocket-pong/internal/session"
)

// helpRows is the number of terminal rows kept free below the frame.
const helpRows = 1

// ModelOptions configures a Model. Every field is optional.
type ModelOptions struct {
	Store  session.HighScoreStore
	Logger *log.Logger
	// Renderer is the lipgloss renderer for the output terminal. SSH sessions
	// pass one bound to the session so colors match the remote profile.
	Renderer *lipgloss.Renderer
	// Scale shrinks the frame by an integer factor. Zero picks the smallest
	// factor that fits the window.
	Scale int
	// Clock drives ticks and key holds. Nil uses the system clock.
	Clock session.Clock
}

// Model is the Bubble Tea model running one Pong session in a terminal.
type Model struct {
	controller *session.Controller
	holds      *input.HoldSource
	sink       *FrameSink
	frames     *FrameRenderer
	keys       KeyMap
	help       help.Model
	clock      session.Clock
	interval   time.Duration

	fixedScale int
	scale      int
	err        error
	quitting   bool
}

// NewModel creates a model for cfg. Key presses are turned into held pin
// levels, so the controller sees the same debounced buttons as on hardware.
func NewModel(cfg config.PongConfig, opts ModelOptions) (Model, error) {
	clock := opts.Clock
	if clock == nil {
		clock = session.SystemClock()
	}

	active := input.ActiveLevel(cfg.Input.ActiveLow)
	holds := input.NewHoldSource(cfg.KeyHold(), active, clock.Now)
	sink := &FrameSink{}

	controller, err := session.NewController(cfg, session.Options{
		Display: sink,
		Store:   opts.Store,
		Source:  holds,
		Logger:  opts.Logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start session: %w", err)
	}

	scale := max(opts.Scale, 0)
	return Model{
		controller: controller,
		holds:      holds,
		sink:       sink,
		frames:     NewFrameRenderer(opts.Renderer, controller.Theme().Background),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		clock:      clock,
		interval:   cfg.FrameInterval(),
		fixedScale: scale,
		scale:      max(scale, 1),
	}, nil
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.holds.Press(m.controller.Pin(b))
	}
	return m, nil
}

// handleResize picks a scale that fits the new window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if m.fixedScale == 0 {
		cfg := m.controller.Config()
		m.scale = core.FitScale(cfg.Screen.Width, cfg.Screen.Height, msg.Width, msg.Height-helpRows)
	}
	return m, nil
}

// handleTick runs one controller frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if err := m.controller.Tick(m.clock.Now()); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// View renders the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.sink.Size()
	frame := m.frames.Render(m.sink.Pixels(), w, h, m.scale)
	return frame + "\n" + m.help.View(m.keys)
}

// Err returns the failure that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Controller returns the session controller.
func (m Model) Controller() *session.Controller {
	return m.controller
}

// Scale returns the current downscale factor.
func (m Model) Scale() int {
	return m.scale
}

// Run plays a session in the current terminal until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg config.PongConfig, opts ModelOptions) error {
	m, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

// Frame returns the last frame pushed by the controller.
func (m Model) Frame() (int, int, []core.Color) {
	w, h := m.sink.Size()
	return w, h, m.sink.Pixels()
}
