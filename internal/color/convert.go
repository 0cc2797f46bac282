package color

import "math"

// sRGB transfer function constants (IEC 61966-2-1).
const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = 0.0031308
	srgbLinearSlope     = 12.92
	srgbOffset          = 0.055
	srgbScale           = 1.055
	srgbGamma           = 2.4
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	return float32(srgbToLinear64(float64(s)))
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	return float32(linearToSRGB64(float64(l)))
}

func srgbToLinear64(s float64) float64 {
	if s <= srgbDecodeThreshold {
		return s / srgbLinearSlope
	}
	return math.Pow((s+srgbOffset)/srgbScale, srgbGamma)
}

func linearToSRGB64(l float64) float64 {
	if l <= srgbEncodeThreshold {
		return l * srgbLinearSlope
	}
	return srgbScale*math.Pow(l, 1.0/srgbGamma) - srgbOffset
}

// LinearToSRGBU8 encodes a linear component as an 8-bit sRGB value.
// The input is clamped to [0,1] and the result rounded to nearest, so
// LinearToSRGBU8(SRGBToLinearFast(v)) == v for every byte v.
func LinearToSRGBU8(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return uint8(linearToSRGB64(float64(l))*255.0 + 0.5)
}

// U8ToLinear decodes an 8-bit sRGB color into linear light.
// Only RGB components are converted; alpha is scaled to [0,1] unchanged.
func U8ToLinear(c ColorU8) ColorF32 {
	return ColorF32{
		R: SRGBToLinearFast(c.R),
		G: SRGBToLinearFast(c.G),
		B: SRGBToLinearFast(c.B),
		A: float32(c.A) / 255.0,
	}
}

// LinearToU8 encodes a linear-light color as 8-bit sRGB.
// Only RGB components are converted; alpha is rounded without gamma.
func LinearToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: LinearToSRGBU8(c.R),
		G: LinearToSRGBU8(c.G),
		B: LinearToSRGBU8(c.B),
		A: clampAndRound(c.A),
	}
}

// U8ToF32 converts ColorU8 to ColorF32 without any transfer function.
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(float32(v*255.0) + 0.5)
}
