package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/platform/cell"
	"github.com/vovakirdan/pocket-pong/internal/platform/tui"
	"github.com/vovakirdan/pocket-pong/internal/storage"
)

// maxComfortScale is the largest downscale at which the ball stays visible.
const maxComfortScale = 4

var (
	flagRenderer string
	flagScale    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Enter  - Start, pause, resume
  ?            - Toggle help
  Q/Esc        - Quit

Renderers:
  tea    - Bubble Tea program with a help line (default)
  tcell  - Direct tcell screen, lowest latency

Difficulty options:
  easy   - Wider paddle, slower ramp, more misses allowed
  normal - Values from the config file
  hard   - Narrower paddle, faster start, fewer misses
  fixed  - Ball speed never increases

Examples:
  pong play
  pong play --difficulty easy
  pong play --renderer tcell --scale 2
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tea", "Terminal renderer: tea or tcell")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixel downscale factor (0 = fit the window)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagRenderer != "tea" && flagRenderer != "tcell" {
		return fmt.Errorf("unknown renderer %q (want tea or tcell)", flagRenderer)
	}
	if flagScale < 0 {
		return fmt.Errorf("scale must not be negative")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal; use 'pong frame' for headless runs")
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && flagScale == 0 {
		if s := core.FitScale(cfg.Screen.Width, cfg.Screen.Height, w, h-1); s > maxComfortScale {
			logger.Warn("terminal is small; the ball may be hard to see", "cols", w, "rows", h, "scale", s)
		}
	}

	// Open high score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open high score database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer store.Close()
	scores := storage.NewHighScores(store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch flagRenderer {
	case "tcell":
		err = cell.Run(ctx, cfg, cell.Options{Store: scores, Logger: logger, Scale: flagScale})
	default:
		err = tui.Run(ctx, cfg, tui.ModelOptions{Store: scores, Logger: logger, Scale: flagScale})
	}
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	return nil
}
