package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Screen: ScreenConfig{
			Width:  240,
			Height: 135,
		},
		Paddle: PaddleConfig{
			Width:        240 / 5,
			Height:       4,
			Speed:        3,
			BottomMargin: 2,
		},
		Ball: BallConfig{
			Size:          4,
			BaseSpeed:     1,
			MaxSpeed:      6,
			SpeedStepHits: 5,
			HitMargin:     1,
		},
		Rules: RulesConfig{
			FailLimit: 10,
		},
		Input: InputConfig{
			DebounceSamples: 3,
			LongPressMS:     800,
			KeyHoldMS:       250,
			ActiveLow:       true,
			Pins: PinsConfig{
				Left:    12,
				Right:   14,
				Confirm: 0,
			},
		},
		Timing: TimingConfig{
			FrameIntervalMS: 16,
		},
		Theme: ThemeConfig{
			Background: "#000000",
			Foreground: "#ffffff",
		},
	}
}
