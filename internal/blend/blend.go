// Package blend implements Porter-Duff source-over compositing in linear
// light.
//
// Inputs and outputs are straight (non-premultiplied) colors. Premultiplication
// happens internally so that color channels stay correct when alpha < 1.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/mndot/honeybee/internal/color"

// Over composites src over dst. Both colors are straight-alpha and their
// RGB channels must already be in linear light.
//
// Formula (premultiplied): S + D*(1-Sa), alpha Sa + Da*(1-Sa).
func Over(src, dst color.ColorF32) color.ColorF32 {
	s := src.Premultiply()
	d := dst.Premultiply()
	inv := 1 - s.A

	out := color.ColorF32{
		R: s.R + float32(d.R*inv),
		G: s.G + float32(d.G*inv),
		B: s.B + float32(d.B*inv),
		A: s.A + float32(d.A*inv),
	}
	if out.A > 1 {
		out.A = 1
	}
	return out.Unpremultiply()
}
