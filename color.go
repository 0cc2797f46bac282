package honeybee

import (
	"fmt"
	"strings"
)

// RGBA is an 8-bit sRGB color with straight (non-premultiplied) alpha.
type RGBA [4]uint8

// RGB is an opaque 8-bit sRGB color.
type RGB [3]uint8

// R returns the red component.
func (c RGBA) R() uint8 { return c[0] }

// G returns the green component.
func (c RGBA) G() uint8 { return c[1] }

// B returns the blue component.
func (c RGBA) B() uint8 { return c[2] }

// A returns the alpha component.
func (c RGBA) A() uint8 { return c[3] }

// RGB drops the alpha component.
func (c RGBA) RGB() RGB { return RGB{c[0], c[1], c[2]} }

// Opaque returns c with full alpha.
func (c RGB) Opaque() RGBA { return RGBA{c[0], c[1], c[2], 255} }

// Common colors
var (
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Transparent = RGBA{0, 0, 0, 0}
	// Amber is the usual lit color of a monochrome LED sign.
	Amber = RGBA{255, 176, 0, 255}
)

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Missing alpha means opaque.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		digits[i] = d
	}

	c := RGBA{0, 0, 0, 255}
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(hex); i++ {
			c[i] = digits[i] * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(hex)/2; i++ {
			c[i] = digits[2*i]<<4 | digits[2*i+1]
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// hexDigit decodes a single hex character.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// String formats c as "#RRGGBBAA".
func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}
