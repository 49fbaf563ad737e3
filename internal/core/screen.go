package core

import (
	"strings"
)

// MaxPixels bounds a single framebuffer allocation. Larger requests fail the
// same way an exhausted DMA heap does on the device: NewFramebuffer returns nil.
const MaxPixels = 1 << 20

// Framebuffer is an off-screen RGB565 pixel buffer in row-major order.
// Every drawing method is a no-op on a nil *Framebuffer so rendering degrades
// silently when allocation failed.
type Framebuffer struct {
	width  int
	height int
	pix    []Color
}

// NewFramebuffer allocates a width×height buffer cleared to black.
// Returns nil for non-positive or oversized dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return nil
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	if f == nil {
		return 0
	}
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	if f == nil {
		return 0
	}
	return f.height
}

// Pixels exposes the backing slice, row-major, width*height long.
// The display sink reads it directly; callers must not retain it across frames.
func (f *Framebuffer) Pixels() []Color {
	if f == nil {
		return nil
	}
	return f.pix
}

// Clear sets every pixel to c.
func (f *Framebuffer) Clear(c Color) {
	if f == nil {
		return
	}
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Set writes a single pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c Color) {
	if f == nil || x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Blit copies a w×h row-major bitmap with its top-left corner at (x, y).
// Pixels falling outside the buffer are dropped. pixels must hold at least
// w*h entries.
func (f *Framebuffer) Blit(x, y, w, h int, pixels []Color) {
	if f == nil {
		return
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			f.Set(x+col, y+row, pixels[row*w+col])
		}
	}
}

// At returns the pixel at (x, y), or black outside the buffer.
func (f *Framebuffer) At(x, y int) Color {
	if f == nil || x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBlack
	}
	return f.pix[y*f.width+x]
}

// FillRect draws a filled axis-aligned rectangle, clipped to the buffer.
// Rectangles that clip away entirely produce no writes.
func (f *Framebuffer) FillRect(x, y, w, h int, c Color) {
	if f == nil {
		return
	}
	r := NewRect(x, y, w, h).Clip(f.width, f.height)
	if r.Empty() {
		return
	}
	for yy := r.Y; yy < r.Bottom(); yy++ {
		row := f.pix[yy*f.width+r.X : yy*f.width+r.Right()]
		for i := range row {
			row[i] = c
		}
	}
}

// DrawRect fills the area of r with c.
func (f *Framebuffer) DrawRect(r Rect, c Color) {
	f.FillRect(r.X, r.Y, r.W, r.H, c)
}

// GlyphAdvance is the horizontal distance between consecutive glyphs at the
// given scale: the glyph cell plus a one-unit gap.
func GlyphAdvance(scale int) int {
	return glyphWidth*scale + scale
}

// TextWidth returns the width DrawText advances over for text at scale.
func TextWidth(text string, scale int) int {
	return len(text) * GlyphAdvance(scale)
}

// DrawChar renders one glyph with its top-left corner at (x, y).
// Each set bit becomes a scale×scale square.
func (f *Framebuffer) DrawChar(x, y int, b byte, scale int, c Color) {
	if f == nil || scale <= 0 {
		return
	}
	g := glyph(b)
	for row := 0; row < glyphHeight; row++ {
		bits := g[row]
		for col := 0; col < glyphWidth; col++ {
			if bits&(0x80>>col) != 0 {
				f.FillRect(x+col*scale, y+row*scale, scale, scale, c)
			}
		}
	}
}

// DrawText renders text byte by byte, left to right, starting at (x, y).
// Bytes outside the glyph table are drawn as '?'.
func (f *Framebuffer) DrawText(x, y int, text string, scale int, c Color) {
	if f == nil {
		return
	}
	cursor := x
	for i := 0; i < len(text); i++ {
		f.DrawChar(cursor, y, text[i], scale, c)
		cursor += GlyphAdvance(scale)
	}
}

// DrawTextCentered draws text horizontally centered at row y.
func (f *Framebuffer) DrawTextCentered(y int, text string, scale int, c Color) {
	if f == nil {
		return
	}
	x := (f.width - TextWidth(text, scale)) / 2
	f.DrawText(x, y, text, scale, c)
}

// Dump renders the buffer as text, '#' for pixels that differ from bg and
// '.' otherwise. Used for debugging and golden tests.
func (f *Framebuffer) Dump(bg Color) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			if f.pix[y*f.width+x] != bg {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
