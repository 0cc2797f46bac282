// Package color provides the 8-bit and floating point color types used by
// the compositor, together with the sRGB transfer functions that move
// values between gamma-encoded and linear-light space.
package color

// ColorU8 represents a color with uint8 components in [0,255].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded) and never premultiplied.
type ColorU8 struct {
	R, G, B, A uint8
}

// ColorF32 represents a color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// Premultiply returns c with its color channels scaled by alpha.
func (c ColorF32) Premultiply() ColorF32 {
	return ColorF32{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the color channels by alpha.
// A fully transparent color becomes transparent black.
func (c ColorF32) Unpremultiply() ColorF32 {
	if c.A == 0 {
		return ColorF32{}
	}
	return ColorF32{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}
