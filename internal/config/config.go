// Package config provides YAML/TOML-based configuration loading and
// difficulty presets for the pong core.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PongConfig contains all configuration for the game and its controller.
type PongConfig struct {
	Screen ScreenConfig `yaml:"screen" toml:"screen"`
	Paddle PaddleConfig `yaml:"paddle" toml:"paddle"`
	Ball   BallConfig   `yaml:"ball" toml:"ball"`
	Rules  RulesConfig  `yaml:"rules" toml:"rules"`
	Input  InputConfig  `yaml:"input" toml:"input"`
	Timing TimingConfig `yaml:"timing" toml:"timing"`
	Theme  ThemeConfig  `yaml:"theme" toml:"theme"`
}

// ScreenConfig defines the framebuffer size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	Speed        int `yaml:"speed" toml:"speed"`                 // pixels per tick while a direction is held
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"` // gap between paddle band and screen bottom
}

// BallConfig defines the ball and its speed ramp.
type BallConfig struct {
	Size          int `yaml:"size" toml:"size"`
	BaseSpeed     int `yaml:"base_speed" toml:"base_speed"`
	MaxSpeed      int `yaml:"max_speed" toml:"max_speed"`
	SpeedStepHits int `yaml:"speed_step_hits" toml:"speed_step_hits"` // hits per +1 speed
	HitMargin     int `yaml:"hit_margin" toml:"hit_margin"`           // gap left above the band after a hit
}

// RulesConfig defines session rules.
type RulesConfig struct {
	FailLimit int `yaml:"fail_limit" toml:"fail_limit"`
}

// InputConfig defines debounce thresholds and pin assignments.
type InputConfig struct {
	DebounceSamples int        `yaml:"debounce_samples" toml:"debounce_samples"`
	LongPressMS     int        `yaml:"long_press_ms" toml:"long_press_ms"`
	KeyHoldMS       int        `yaml:"key_hold_ms" toml:"key_hold_ms"`
	Pins            PinsConfig `yaml:"pins" toml:"pins"`
	ActiveLow       bool       `yaml:"active_low" toml:"active_low"`
}

// PinsConfig maps logical buttons to raw input lines. -1 leaves a button unassigned.
type PinsConfig struct {
	Left    int `yaml:"left" toml:"left"`
	Right   int `yaml:"right" toml:"right"`
	Confirm int `yaml:"confirm" toml:"confirm"`
}

// TimingConfig defines the fixed tick.
type TimingConfig struct {
	FrameIntervalMS int `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
}

// ThemeConfig defines the two drawing colors as "#rrggbb".
type ThemeConfig struct {
	Background string `yaml:"background" toml:"background"`
	Foreground string `yaml:"foreground" toml:"foreground"`
}

// BallSpeed returns the ball speed after the given number of hits:
// base + hits/step, capped at the max speed.
func (c PongConfig) BallSpeed(hits int) int {
	speed := c.Ball.BaseSpeed
	if c.Ball.SpeedStepHits > 0 {
		speed += hits / c.Ball.SpeedStepHits
	}
	if speed > c.Ball.MaxSpeed {
		speed = c.Ball.MaxSpeed
	}
	return speed
}

// PaddleY returns the top row of the paddle band.
func (c PongConfig) PaddleY() int {
	return c.Screen.Height - c.Paddle.Height - c.Paddle.BottomMargin
}

// LongPress returns the long-press threshold.
func (c PongConfig) LongPress() time.Duration {
	return time.Duration(c.Input.LongPressMS) * time.Millisecond
}

// KeyHold returns how long a key event keeps its virtual pin asserted.
func (c PongConfig) KeyHold() time.Duration {
	return time.Duration(c.Input.KeyHoldMS) * time.Millisecond
}

// FrameInterval returns the fixed tick period.
func (c PongConfig) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameIntervalMS) * time.Millisecond
}

// Colors parses the theme into RGB565 background and foreground colors.
func (c PongConfig) Colors() (bg, fg core.Color, err error) {
	bg, err = core.ParseHexColor(c.Theme.Background)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: theme.background: %v", ErrInvalid, err)
	}
	fg, err = core.ParseHexColor(c.Theme.Foreground)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: theme.foreground: %v", ErrInvalid, err)
	}
	return bg, fg, nil
}

// Validate checks that the configuration describes a playable field.
func (c PongConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	} else if c.Screen.Width > core.MaxPixels/c.Screen.Height {
		fail("screen size %dx%d exceeds %d pixels", c.Screen.Width, c.Screen.Height, core.MaxPixels)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		fail("paddle size %dx%d must be positive", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Screen.Width {
		fail("paddle width %d wider than screen %d", c.Paddle.Width, c.Screen.Width)
	}
	if c.Paddle.Speed < 0 || c.Paddle.BottomMargin < 0 {
		fail("paddle speed and bottom_margin must not be negative")
	}
	if c.PaddleY() <= 0 {
		fail("paddle band does not fit on a %d pixel tall screen", c.Screen.Height)
	}
	if c.Ball.Size <= 0 || c.Ball.Size >= c.Screen.Width || c.Ball.Size >= c.PaddleY() {
		fail("ball size %d does not fit the field", c.Ball.Size)
	}
	if c.Ball.BaseSpeed <= 0 {
		fail("ball base_speed %d must be positive", c.Ball.BaseSpeed)
	}
	if c.Ball.MaxSpeed < c.Ball.BaseSpeed {
		fail("ball max_speed %d below base_speed %d", c.Ball.MaxSpeed, c.Ball.BaseSpeed)
	}
	if c.Ball.SpeedStepHits <= 0 {
		fail("ball speed_step_hits %d must be positive", c.Ball.SpeedStepHits)
	}
	if c.Ball.HitMargin < 0 {
		fail("ball hit_margin %d must not be negative", c.Ball.HitMargin)
	}
	if c.Rules.FailLimit <= 0 {
		fail("rules fail_limit %d must be positive", c.Rules.FailLimit)
	}
	if c.Input.DebounceSamples < 0 || c.Input.KeyHoldMS < 0 {
		fail("input thresholds must not be negative")
	}
	if c.Input.LongPressMS <= 0 {
		fail("input long_press_ms %d must be positive", c.Input.LongPressMS)
	}
	if c.Timing.FrameIntervalMS <= 0 {
		fail("timing frame_interval_ms %d must be positive", c.Timing.FrameIntervalMS)
	}
	if _, _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
