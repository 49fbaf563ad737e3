package pong

import (
	"fmt"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// Text layout, in pixels and glyph scale factors.
const (
	hudX, hudY         = 2, 2
	hudScale           = 2
	hudExpandedScale   = 1
	titleY, titleScale = 20, 3
	highY, highScale   = 70, 2
	promptX            = 20
	promptFromBottom   = 20
	pauseOffsetX       = 20
	pauseOffsetY       = 4
)

// Theme holds the two colors every scene is drawn with.
type Theme struct {
	Background core.Color
	Foreground core.Color
}

// DefaultTheme is white on black.
var DefaultTheme = Theme{Background: core.ColorBlack, Foreground: core.ColorWhite}

// Scene carries the per-frame overlay flags for RenderPlay.
type Scene struct {
	ExpandedHUD bool // show the high score alongside hits and misses
	HighScore   int
	Paused      bool
}

// HUDText returns the score line and its scale.
func HUDText(score Score, scene Scene) (string, int) {
	if scene.ExpandedHUD {
		return fmt.Sprintf("HISCORE:%d H:%d F:%d", scene.HighScore, score.Hits, score.Misses), hudExpandedScale
	}
	return fmt.Sprintf("H:%d F:%d", score.Hits, score.Misses), hudScale
}

// RenderPlay redraws the whole play field: paddle, ball, score line and,
// when paused, the PAUSE label.
func RenderPlay(fb *core.Framebuffer, g *Game, scene Scene, theme Theme) {
	if fb == nil || g == nil {
		return
	}
	fb.Clear(theme.Background)

	fb.DrawRect(g.PaddleRect(), theme.Foreground)
	fb.DrawRect(g.BallRect(), theme.Foreground)

	text, scale := HUDText(g.Score(), scene)
	fb.DrawText(hudX, hudY, text, scale, theme.Foreground)

	if scene.Paused {
		fb.DrawText(fb.Width()/2-pauseOffsetX, fb.Height()/2-pauseOffsetY, "PAUSE", 1, theme.Foreground)
	}
}

// RenderStart redraws the title screen with the current high score.
func RenderStart(fb *core.Framebuffer, highScore int, theme Theme) {
	if fb == nil {
		return
	}
	fb.Clear(theme.Background)

	fb.DrawTextCentered(titleY, "PONG", titleScale, theme.Foreground)
	fb.DrawTextCentered(highY, fmt.Sprintf("HIGH:%d", highScore), highScale, theme.Foreground)
	fb.DrawText(promptX, fb.Height()-promptFromBottom, "PRESS BOOT", 1, theme.Foreground)
}
