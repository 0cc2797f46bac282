package blend

import "github.com/mndot/honeybee/internal/color"

// OverSRGB composites 8-bit sRGB src over 8-bit sRGB dst in linear space:
//  1. Decode src/dst RGB from sRGB to linear (alpha stays linear)
//  2. Apply source-over with premultiplied alpha
//  3. Encode the result RGB back to sRGB and round to 8 bits
//
// A fully transparent src returns dst unchanged, byte for byte.
func OverSRGB(src, dst color.ColorU8) color.ColorU8 {
	if src.A == 0 {
		return dst
	}
	out := Over(color.U8ToLinear(src), color.U8ToLinear(dst))
	return color.LinearToU8(out)
}
