package color

// sRGBToLinearLUT provides O(1) sRGB to Linear conversion.
// Pre-computed 256 entries, 1KB memory cost.
// Every entry is the float32 rounding of the reference transfer function,
// so the table is exact rather than an approximation.
var sRGBToLinearLUT [256]float32

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = float32(srgbToLinear64(float64(i) / 255.0))
	}
}

// SRGBToLinearFast converts sRGB byte to linear float32 using lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// SRGBToLinearSlow converts sRGB byte to linear float32 using math.Pow.
// Reference implementation for the lookup table.
func SRGBToLinearSlow(s uint8) float32 {
	return float32(srgbToLinear64(float64(s) / 255.0))
}
