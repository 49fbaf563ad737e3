package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 16-bit RGB565 pixel value, the native format of the panel.
type Color uint16

// Predefined colors for game elements.
const (
	ColorBlack   Color = 0x0000
	ColorWhite   Color = 0xFFFF
	ColorRed     Color = 0xF800
	ColorGreen   Color = 0x07E0
	ColorBlue    Color = 0x001F
	ColorYellow  Color = 0xFFE0
	ColorCyan    Color = 0x07FF
	ColorMagenta Color = 0xF81F
	ColorGray    Color = 0x8410
)

// RGB packs 8-bit channels into RGB565, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB8 expands the color back to 8-bit channels.
// Low bits are filled by replicating the high bits so white stays 0xFF.
func (c Color) RGB8() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into RGB565.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("core: invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
