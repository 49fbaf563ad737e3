package core

import (
	"strings"
	"testing"
)

func countPixels(f *Framebuffer, c Color) int {
	n := 0
	for _, p := range f.Pixels() {
		if p == c {
			n++
		}
	}
	return n
}

func TestNewFramebuffer(t *testing.T) {
	f := NewFramebuffer(240, 135)
	if f == nil {
		t.Fatal("NewFramebuffer(240, 135) returned nil")
	}

	if f.Width() != 240 {
		t.Errorf("Width() = %d, expected 240", f.Width())
	}
	if f.Height() != 135 {
		t.Errorf("Height() = %d, expected 135", f.Height())
	}
	if len(f.Pixels()) != 240*135 {
		t.Errorf("len(Pixels()) = %d, expected %d", len(f.Pixels()), 240*135)
	}
	if countPixels(f, ColorBlack) != 240*135 {
		t.Error("New framebuffer should be cleared to black")
	}
}

func TestNewFramebufferRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -4, 10},
		{"too large", MaxPixels, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if f := NewFramebuffer(tc.w, tc.h); f != nil {
				t.Errorf("NewFramebuffer(%d, %d) should return nil", tc.w, tc.h)
			}
		})
	}
}

func TestNilFramebufferIsNoop(t *testing.T) {
	var f *Framebuffer

	// None of these should panic
	f.Clear(ColorWhite)
	f.Set(1, 1, ColorWhite)
	f.FillRect(0, 0, 10, 10, ColorWhite)
	f.DrawText(0, 0, "PONG", 2, ColorWhite)
	f.DrawTextCentered(5, "PAUSE", 1, ColorWhite)
	f.Blit(0, 0, 1, 1, []Color{ColorWhite})

	if f.Width() != 0 || f.Height() != 0 {
		t.Error("nil framebuffer should report zero size")
	}
	if f.Pixels() != nil {
		t.Error("nil framebuffer should have no pixels")
	}
	if f.At(0, 0) != ColorBlack {
		t.Error("nil framebuffer At should return black")
	}
}

func TestFramebufferSetAt(t *testing.T) {
	f := NewFramebuffer(10, 10)

	f.Set(5, 5, ColorWhite)
	if f.At(5, 5) != ColorWhite {
		t.Errorf("At(5, 5) = %#04x, expected white", f.At(5, 5))
	}

	// Out of bounds should be silent
	f.Set(-1, 0, ColorWhite)
	f.Set(100, 0, ColorWhite)
	f.Set(0, -1, ColorWhite)
	f.Set(0, 100, ColorWhite)

	if countPixels(f, ColorWhite) != 1 {
		t.Errorf("expected exactly 1 white pixel, got %d", countPixels(f, ColorWhite))
	}
	if f.At(-1, 0) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
}

func TestFramebufferClear(t *testing.T) {
	f := NewFramebuffer(8, 4)
	f.FillRect(1, 1, 3, 2, ColorWhite)

	f.Clear(ColorRed)

	if countPixels(f, ColorRed) != 32 {
		t.Errorf("After Clear, expected 32 red pixels, got %d", countPixels(f, ColorRed))
	}
}

func TestFillRectClipsNegativeOrigin(t *testing.T) {
	f := NewFramebuffer(20, 10)
	f.FillRect(-5, 0, 10, 4, ColorWhite)

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			want := x < 5 && y < 4
			got := f.At(x, y) == ColorWhite
			if got != want {
				t.Fatalf("pixel (%d, %d) white = %v, expected %v", x, y, got, want)
			}
		}
	}
	if countPixels(f, ColorWhite) != 20 {
		t.Errorf("expected a 5x4 rectangle (20 pixels), got %d", countPixels(f, ColorWhite))
	}
}

func TestFillRectClipping(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		expected   int
	}{
		{"inside", 2, 2, 3, 3, 9},
		{"overflows right", 18, 0, 5, 2, 4},
		{"overflows bottom", 0, 8, 3, 5, 6},
		{"overflows both", 19, 9, 4, 4, 1},
		{"negative y", 0, -3, 2, 4, 2},
		{"fully left", -10, 0, 5, 5, 0},
		{"fully right", 20, 0, 5, 5, 0},
		{"fully above", 0, -5, 5, 5, 0},
		{"zero size", 3, 3, 0, 0, 0},
		{"negative size", 3, 3, -2, 4, 0},
		{"whole buffer", -1, -1, 100, 100, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFramebuffer(20, 10)
			f.FillRect(tc.x, tc.y, tc.w, tc.h, ColorWhite)
			if got := countPixels(f, ColorWhite); got != tc.expected {
				t.Errorf("FillRect(%d, %d, %d, %d) wrote %d pixels, expected %d",
					tc.x, tc.y, tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestDrawCharBitmap(t *testing.T) {
	f := NewFramebuffer(8, 8)
	f.DrawChar(0, 0, 'A', 1, ColorWhite)

	expected := strings.Join([]string{
		"..###...",
		".##.##..",
		"##...##.",
		"##...##.",
		"#######.",
		"##...##.",
		"##...##.",
		"........",
	}, "\n")

	if got := f.Dump(ColorBlack); got != expected {
		t.Errorf("DrawChar('A') =\n%s\nexpected\n%s", got, expected)
	}
}

func TestDrawCharScale(t *testing.T) {
	f := NewFramebuffer(16, 16)
	f.DrawChar(0, 0, 'A', 2, ColorWhite)

	// Row 0 of 'A' is 0x38: columns 2..4 set, each doubled
	for x := 0; x < 16; x++ {
		want := x >= 4 && x < 10
		for y := 0; y < 2; y++ {
			if got := f.At(x, y) == ColorWhite; got != want {
				t.Errorf("pixel (%d, %d) white = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestDrawTextAdvance(t *testing.T) {
	f := NewFramebuffer(40, 16)
	f.DrawText(0, 0, "AB", 2, ColorWhite)

	// Advance is 8*2+2 = 18, so 'B' starts at x=18; its row 0 (0xFC) sets column 0
	if f.At(18, 0) != ColorWhite {
		t.Error("second glyph should start at x=18")
	}
	// The gap columns 16 and 17 must stay empty
	for y := 0; y < 16; y++ {
		if f.At(16, y) != ColorBlack || f.At(17, y) != ColorBlack {
			t.Fatalf("inter-glyph gap touched at row %d", y)
		}
	}

	if GlyphAdvance(1) != 9 || GlyphAdvance(3) != 27 {
		t.Errorf("GlyphAdvance = %d/%d, expected 9/27", GlyphAdvance(1), GlyphAdvance(3))
	}
	if TextWidth("PONG", 3) != 108 {
		t.Errorf("TextWidth(PONG, 3) = %d, expected 108", TextWidth("PONG", 3))
	}
}

func TestDrawTextFallbackGlyph(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"high byte", "\xc8"},
		{"max byte", "\xff"},
		{"utf-8 lead byte", "\xe2"},
	}

	want := NewFramebuffer(9, 8)
	want.DrawText(0, 0, "?", 1, ColorWhite)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewFramebuffer(9, 8)
			got.DrawText(0, 0, tc.text, 1, ColorWhite)
			if got.Dump(ColorBlack) != want.Dump(ColorBlack) {
				t.Errorf("byte %q should render as '?'", tc.text)
			}
		})
	}
}

func TestDrawTextClipsAtEdges(t *testing.T) {
	f := NewFramebuffer(12, 6)

	// Must not panic when glyphs hang off every side
	f.DrawText(-4, -3, "HELLO", 1, ColorWhite)
	f.DrawText(8, 4, "WORLD", 2, ColorWhite)

	if countPixels(f, ColorWhite) == 0 {
		t.Error("partially visible text should still draw something")
	}
}

func TestDrawTextCentered(t *testing.T) {
	f := NewFramebuffer(40, 8)
	f.DrawTextCentered(0, "I", 1, ColorWhite)

	// "I" is 9 wide with its gap, centered in 40 starts at x=15; row 0 is 0x3C
	x := (40 - 9) / 2
	if f.At(x+2, 0) != ColorWhite || f.At(x+5, 0) != ColorWhite {
		t.Error("DrawTextCentered failed, text not at expected position")
	}
	if f.At(x+1, 0) != ColorBlack {
		t.Error("DrawTextCentered drew outside the glyph")
	}
}

func TestFramebufferBlit(t *testing.T) {
	f := NewFramebuffer(4, 3)

	// 3x2 block hanging off the right and top edges.
	f.Blit(2, -1, 3, 2, []Color{1, 2, 3, 4, 5, 6})

	expected := []Color{
		0, 0, 4, 5,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	for i, c := range f.Pixels() {
		if c != expected[i] {
			t.Errorf("pixel %d = %d, expected %d", i, c, expected[i])
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#000000", ColorBlack, false},
		{"#ffffff", ColorWhite, false},
		{"FF0000", ColorRed, false},
		{"#00ff00", ColorGreen, false},
		{"#12345", 0, true},
		{"#zzzzzz", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseHexColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseHexColor(%q) = %#04x, expected %#04x", tc.in, got, tc.expected)
		}
	}

	if ColorWhite.Hex() != "#ffffff" {
		t.Errorf("ColorWhite.Hex() = %q", ColorWhite.Hex())
	}
}
