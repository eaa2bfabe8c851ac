package svgedit

import (
	"fmt"
	"strings"
)

// RGB represents an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
	Red   = RGB{R: 255}
	Green = RGB{G: 255}
	Blue  = RGB{B: 255}
)

// Default colors for shapes that carry no color attribute.
var (
	DefaultFill   = White
	DefaultStroke = Black
)

// RGBA implements the color.Color interface. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex decodes a "#RRGGBB" string.
//
// The text must start with '#' followed by at least six hex digits; the first
// six are read as three two-digit channels and anything after them is
// ignored. Any other input, including the empty string, yields def.
// ParseHex never fails.
func ParseHex(text string, def RGB) RGB {
	text = strings.TrimSpace(text)
	if len(text) < 7 || text[0] != '#' {
		return def
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok := hexDigit(text[1+2*i])
		if !ok {
			return def
		}
		lo, ok := hexDigit(text[2+2*i])
		if !ok {
			return def
		}
		ch[i] = hi<<4 | lo
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
