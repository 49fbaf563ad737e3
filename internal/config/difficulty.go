package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = cfg.Screen.Width / 4
		cfg.Ball.SpeedStepHits = 8
		cfg.Ball.MaxSpeed = 4
		cfg.Rules.FailLimit = 15
	case DifficultyHard:
		cfg.Paddle.Width = cfg.Screen.Width / 6
		cfg.Ball.BaseSpeed = 2
		cfg.Ball.SpeedStepHits = 3
		cfg.Rules.FailLimit = 5
	case DifficultyFixed:
		cfg.Ball.MaxSpeed = cfg.Ball.BaseSpeed
	}

	if cfg.Paddle.Width < 1 {
		cfg.Paddle.Width = 1
	}
	if cfg.Ball.MaxSpeed < cfg.Ball.BaseSpeed {
		cfg.Ball.MaxSpeed = cfg.Ball.BaseSpeed
	}
}
