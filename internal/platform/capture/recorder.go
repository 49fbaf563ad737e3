// Package capture runs sessions headless: frames are recorded in memory and
// can be saved as images.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/pocket-pong/internal/core"
)

// Recorder is a session.Display that keeps the last frame it was given.
type Recorder struct {
	fb     *core.Framebuffer
	frames int
}

// DrawBitmap implements session.Display. A rectangle at the origin with a
// new size replaces the frame; other rectangles are copied into it.
func (r *Recorder) DrawBitmap(x, y, w, h int, pixels []core.Color) error {
	if w < 0 || h < 0 || len(pixels) < w*h {
		return fmt.Errorf("capture: short bitmap: %d pixels for %dx%d", len(pixels), w, h)
	}
	if x == 0 && y == 0 && (w != r.fb.Width() || h != r.fb.Height()) {
		r.fb = core.NewFramebuffer(w, h)
	}
	r.fb.Blit(x, y, w, h, pixels)
	r.frames++
	return nil
}

// Frames returns how many bitmaps were drawn.
func (r *Recorder) Frames() int {
	return r.frames
}

// Size returns the recorded frame size.
func (r *Recorder) Size() (int, int) {
	return r.fb.Width(), r.fb.Height()
}

// At returns the pixel at (x, y), or 0 outside the frame.
func (r *Recorder) At(x, y int) core.Color {
	return r.fb.At(x, y)
}

// Image converts the recorded frame to an RGBA image.
func (r *Recorder) Image() *image.RGBA {
	w, h := r.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb := r.fb.At(x, y).RGB8()
			img.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: 0xff})
		}
	}
	return img
}

// WriteBMP encodes the recorded frame as a BMP image.
func (r *Recorder) WriteBMP(w io.Writer) error {
	if w, h := r.Size(); w == 0 || h == 0 {
		return fmt.Errorf("capture: no frame recorded")
	}
	if err := bmp.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("capture: cannot encode bmp: %w", err)
	}
	return nil
}

// SaveBMP writes the recorded frame to path, creating parent directories.
func (r *Recorder) SaveBMP(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("capture: cannot create directory: %w", err)
		}
	}
	f, err := os.Create(path) //#nosec G304 -- path comes from the command line
	if err != nil {
		return fmt.Errorf("capture: cannot create %s: %w", path, err)
	}
	if err := r.WriteBMP(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Dump renders the frame as text, '#' for pixels that differ from bg.
func (r *Recorder) Dump(bg core.Color) string {
	return r.fb.Dump(bg)
}
