// pong is a single-player paddle game for tiny color panels, played in the
// terminal, over SSH, or headless.
//
// Usage:
//
//	pong play              - Play in this terminal
//	pong serve             - Start SSH server for remote play
//	pong scores            - Show or reset the stored high score
//	pong frame             - Run headless and save the last frame as BMP
//
// Global flags:
//
//	--config <path>        - Config file (YAML, or TOML by extension)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--db <path>            - High score database (default: ~/.pong/highscore.db)
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-pong/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pocket Pong - keep the ball off the floor",
	Long: `Pocket Pong is a one-player paddle game built for a 240x135 color
panel. Bounce the ball off your paddle; every few hits it gets faster, and
after too many misses the game returns to the title screen.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show or reset the high score
  frame    - Render a headless run to a BMP file

Examples:
  pong play
  pong play --difficulty hard
  pong serve --ssh :2222
  pong scores --reset
  pong frame --press-at 0 --ticks 120 --out frame.bmp`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/highscore.db", "Path to high score database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frameCmd)
}

// newLogger builds the command logger. Interactive front-ends own the
// terminal, so without --log-file their logs are discarded. The returned
// function closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path comes from the command line
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the config file chain and applies --difficulty.
func loadConfig(logger *log.Logger) (config.PongConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}
