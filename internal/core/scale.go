package core

// FitScale returns the smallest integer factor at which a w×h pixel frame
// fits in cols×rows terminal cells, with two pixel rows per cell.
func FitScale(w, h, cols, rows int) int {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 1
	}
	for scale := 1; ; scale++ {
		cw := ceilDiv(w, scale)
		ch := ceilDiv(ceilDiv(h, scale), 2)
		if (cw <= cols && ch <= rows) || (cw == 1 && ch == 1) {
			return scale
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Downsample shrinks a w×h frame by scale. Each output pixel takes the first
// non-background pixel of its block, so one-pixel strokes survive.
// A scale of 1 or less returns pixels as is.
func Downsample(pixels []Color, w, h, scale int, bg Color) ([]Color, int, int) {
	if scale <= 1 {
		return pixels, w, h
	}
	ow, oh := ceilDiv(w, scale), ceilDiv(h, scale)
	out := make([]Color, ow*oh)
	for oy := 0; oy < oh; oy++ {
		for ox := 0; ox < ow; ox++ {
			c := bg
		block:
			for y := oy * scale; y < min(h, (oy+1)*scale); y++ {
				for x := ox * scale; x < min(w, (ox+1)*scale); x++ {
					if p := pixels[y*w+x]; p != bg {
						c = p
						break block
					}
				}
			}
			out[oy*ow+ox] = c
		}
	}
	return out, ow, oh
}

// HalfBlockCell returns the pixels shown by the terminal cell whose top row
// is y: the top pixel and the one below it. A missing bottom row reads as bg.
func HalfBlockCell(pixels []Color, w, h, x, y int, bg Color) (top, bottom Color) {
	top = pixels[y*w+x]
	bottom = bg
	if y+1 < h {
		bottom = pixels[(y+1)*w+x]
	}
	return top, bottom
}
