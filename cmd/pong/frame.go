package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-pong/internal/config"
	"github.com/vovakirdan/pocket-pong/internal/core"
	"github.com/vovakirdan/pocket-pong/internal/games/pong"
	"github.com/vovakirdan/pocket-pong/internal/platform/capture"
)

var (
	flagTicks   int
	flagPressAt []int
	flagHolds   []string
	flagOut     string
	flagASCII   bool

	// Scene flags
	flagBall   []int
	flagPaddle int
	flagHits   int
	flagMisses int
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Run headless and save the last frame",
	Long: `Run a game without a terminal on a simulated clock and write the
last frame as a BMP image. Input comes from a script of button holds, so
the same flags always produce the same frame. The high score database is
not touched.

Hold syntax:
  button@tick          - tap: hold long enough to pass the debouncer
  button@from-until    - hold for ticks [from, until)
  Buttons are left, right and confirm.

Scene flags skip the title screen and start a running game from a chosen
position. Unset values keep those of a fresh game.

Examples:
  pong frame                                  # title screen
  pong frame --press-at 0 --ticks 120         # 120 frames into a game
  pong frame --press-at 0 --hold left@10-60   # move the paddle left
  pong frame --press-at 0 --ticks 200 --ascii # also print the frame as text
  pong frame --ball 20,120,2,2 --paddle 0     # a ball about to be returned
  pong frame --hits 12 --misses 9             # HUD late in a game`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	addFrameFlags(frameCmd)
}

// addFrameFlags registers the frame flags on c.
func addFrameFlags(c *cobra.Command) {
	c.Flags().IntVar(&flagTicks, "ticks", 1, "Number of frames to run")
	c.Flags().IntSliceVar(&flagPressAt, "press-at", nil, "Tap confirm at these ticks")
	c.Flags().StringArrayVar(&flagHolds, "hold", nil, "Hold a button: button@from-until (repeatable)")
	c.Flags().StringVar(&flagOut, "out", "frame.bmp", "Output BMP path")
	c.Flags().BoolVar(&flagASCII, "ascii", false, "Print the frame as text")
	c.Flags().IntSliceVar(&flagBall, "ball", nil, "Start with the ball at x,y moving vx,vy")
	c.Flags().IntVar(&flagPaddle, "paddle", 0, "Start with the paddle's left edge at this x")
	c.Flags().IntVar(&flagHits, "hits", 0, "Start with this many hits")
	c.Flags().IntVar(&flagMisses, "misses", 0, "Start with this many misses")
}

func runFrame(cmd *cobra.Command, _ []string) error {
	if flagTicks < 1 {
		return fmt.Errorf("ticks must be at least 1")
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	tap := cfg.Input.DebounceSamples + 1
	var holds []capture.Hold
	for _, at := range flagPressAt {
		if at < 0 {
			return fmt.Errorf("press-at tick must not be negative")
		}
		holds = append(holds, capture.Hold{Button: core.ButtonConfirm, From: at, Until: at + tap})
	}
	for _, s := range flagHolds {
		h, err := capture.ParseHold(s, tap)
		if err != nil {
			return err
		}
		holds = append(holds, h)
	}

	scene, err := sceneFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	res, err := capture.RunFrom(context.Background(), cfg, scene, holds, flagTicks, nil, logger)
	if err != nil {
		return err
	}
	if err := res.Recorder.SaveBMP(flagOut); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	score := res.Controller.Game().Score()
	fmt.Fprintf(out, "Wrote %s after %d ticks (state %s, hits %d, misses %d)\n",
		flagOut, res.Controller.Ticks(), res.Controller.State(), score.Hits, score.Misses)
	if flagASCII {
		bg := res.Controller.Theme().Background
		fmt.Fprintln(out, res.Recorder.Dump(bg))
	}
	return nil
}

// sceneFromFlags builds the starting position from the scene flags, or
// returns nil when none was given.
func sceneFromFlags(cmd *cobra.Command, cfg config.PongConfig) (*pong.Snapshot, error) {
	flags := cmd.Flags()
	if !flags.Changed("ball") && !flags.Changed("paddle") && !flags.Changed("hits") && !flags.Changed("misses") {
		return nil, nil
	}

	snap := pong.New(cfg).Snapshot()
	if flags.Changed("ball") {
		if len(flagBall) != 4 {
			return nil, fmt.Errorf("ball wants x,y,vx,vy, got %d values", len(flagBall))
		}
		snap.Ball = pong.Ball{X: flagBall[0], Y: flagBall[1], VX: flagBall[2], VY: flagBall[3]}
	}
	if flags.Changed("paddle") {
		snap.PaddleX = flagPaddle
	}
	if flagHits < 0 || flagMisses < 0 {
		return nil, fmt.Errorf("hits and misses must not be negative")
	}
	if flags.Changed("hits") {
		snap.Hits = flagHits
	}
	if flags.Changed("misses") {
		if flagMisses >= cfg.Rules.FailLimit {
			return nil, fmt.Errorf("misses %d would end the game (fail limit %d)", flagMisses, cfg.Rules.FailLimit)
		}
		snap.Misses = flagMisses
	}
	return &snap, nil
}
