package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

const halfBlock = "▀"

// FrameSink keeps the most recent frame pushed by the controller.
// It implements session.Display.
type FrameSink struct {
	fb *core.Framebuffer
}

// DrawBitmap implements session.Display. A rectangle at the origin with a
// new size replaces the frame; other rectangles are copied into it.
func (s *FrameSink) DrawBitmap(x, y, w, h int, pixels []core.Color) error {
	if w < 0 || h < 0 || len(pixels) < w*h {
		return fmt.Errorf("tui: short bitmap: %d pixels for %dx%d", len(pixels), w, h)
	}
	if x == 0 && y == 0 && (w != s.fb.Width() || h != s.fb.Height()) {
		s.fb = core.NewFramebuffer(w, h)
	}
	s.fb.Blit(x, y, w, h, pixels)
	return nil
}

// Size returns the frame dimensions in pixels.
func (s *FrameSink) Size() (int, int) {
	return s.fb.Width(), s.fb.Height()
}

// Pixels returns the stored frame, row-major.
func (s *FrameSink) Pixels() []core.Color {
	return s.fb.Pixels()
}

// FrameRenderer turns RGB565 frames into styled terminal text.
type FrameRenderer struct {
	renderer *lipgloss.Renderer
	bg       core.Color
	styles   map[[2]core.Color]lipgloss.Style
}

// NewFrameRenderer creates a renderer drawing through r (nil means the
// default renderer). bg is the theme background, used when shrinking frames.
func NewFrameRenderer(r *lipgloss.Renderer, bg core.Color) *FrameRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &FrameRenderer{
		renderer: r,
		bg:       bg,
		styles:   make(map[[2]core.Color]lipgloss.Style),
	}
}

func (fr *FrameRenderer) style(top, bottom core.Color) lipgloss.Style {
	k := [2]core.Color{top, bottom}
	if st, ok := fr.styles[k]; ok {
		return st
	}
	st := fr.renderer.NewStyle().
		Foreground(lipgloss.Color(top.Hex())).
		Background(lipgloss.Color(bottom.Hex()))
	fr.styles[k] = st
	return st
}

// Render draws a w×h frame shrunk by scale. Each cell shows two pixels: the
// upper half-block takes the top pixel as foreground and the bottom pixel as
// background. Runs of identical cells share one style.
func (fr *FrameRenderer) Render(pixels []core.Color, w, h, scale int) string {
	if w <= 0 || h <= 0 || len(pixels) < w*h {
		return ""
	}
	px, pw, ph := core.Downsample(pixels, w, h, scale, fr.bg)

	var sb strings.Builder
	sb.Grow(pw*ph + ph)

	for y := 0; y < ph; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < pw {
			top, bottom := core.HalfBlockCell(px, pw, ph, x, y, fr.bg)
			n := 1
			for x+n < pw {
				t, b := core.HalfBlockCell(px, pw, ph, x+n, y, fr.bg)
				if t != top || b != bottom {
					break
				}
				n++
			}
			sb.WriteString(fr.style(top, bottom).Render(strings.Repeat(halfBlock, n)))
			x += n
		}
	}
	return sb.String()
}
