package blend

import (
	"math"
	"testing"

	"github.com/mndot/honeybee/internal/color"
)

func TestOverOpaqueSource(t *testing.T) {
	src := color.ColorF32{R: 0.2, G: 0.4, B: 0.6, A: 1}
	dsts := []color.ColorF32{
		{},
		{R: 1, G: 1, B: 1, A: 1},
		{R: 0.9, G: 0.1, B: 0.3, A: 0.5},
	}
	for _, dst := range dsts {
		if got := Over(src, dst); got != src {
			t.Errorf("Over(%v, %v) = %v, want %v", src, dst, got, src)
		}
	}
}

func TestOverTransparentResult(t *testing.T) {
	got := Over(color.ColorF32{R: 1, A: 0}, color.ColorF32{G: 1, A: 0})
	if got != (color.ColorF32{}) {
		t.Errorf("Over of two transparent colors = %v, want transparent black", got)
	}
}

func TestOverStraightAlphaOutput(t *testing.T) {
	// Half-covered red over transparent keeps full-intensity red.
	got := Over(color.ColorF32{R: 1, A: 0.5}, color.ColorF32{})
	if math.Abs(float64(got.R-1)) > 1e-6 || got.A != 0.5 {
		t.Errorf("Over() = %v, want R=1 A=0.5", got)
	}
}

func TestOverSRGB(t *testing.T) {
	tests := []struct {
		name     string
		src, dst color.ColorU8
		want     color.ColorU8
	}{
		{
			name: "50% black over white",
			src:  color.ColorU8{R: 0, G: 0, B: 0, A: 128},
			dst:  color.ColorU8{R: 255, G: 255, B: 255, A: 255},
			want: color.ColorU8{R: 187, G: 187, B: 187, A: 255},
		},
		{
			name: "50% white over black",
			src:  color.ColorU8{R: 255, G: 255, B: 255, A: 128},
			dst:  color.ColorU8{R: 0, G: 0, B: 0, A: 255},
			want: color.ColorU8{R: 188, G: 188, B: 188, A: 255},
		},
		{
			name: "50% white over transparent",
			src:  color.ColorU8{R: 255, G: 255, B: 255, A: 128},
			dst:  color.ColorU8{},
			want: color.ColorU8{R: 255, G: 255, B: 255, A: 128},
		},
		{
			name: "opaque source replaces",
			src:  color.ColorU8{R: 12, G: 34, B: 56, A: 255},
			dst:  color.ColorU8{R: 200, G: 100, B: 50, A: 10},
			want: color.ColorU8{R: 12, G: 34, B: 56, A: 255},
		},
		{
			name: "transparent source keeps transparent destination color",
			src:  color.ColorU8{R: 255, G: 255, B: 255, A: 0},
			dst:  color.ColorU8{R: 7, G: 8, B: 9, A: 0},
			want: color.ColorU8{R: 7, G: 8, B: 9, A: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverSRGB(tt.src, tt.dst); got != tt.want {
				t.Errorf("OverSRGB(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

// TestLinearVsSRGBBlending verifies that linear blending produces different
// results than blending gamma-encoded bytes directly.
func TestLinearVsSRGBBlending(t *testing.T) {
	src := color.ColorU8{R: 255, G: 0, B: 0, A: 128}
	dst := color.ColorU8{R: 0, G: 255, B: 0, A: 255}

	linear := OverSRGB(src, dst)
	naive := naiveOver(src, dst)

	if linear.R == naive.R && linear.G == naive.G {
		t.Errorf("linear and sRGB blending produced identical results: %v", linear)
	}
	// Naive blending darkens the midpoint; linear light keeps it bright.
	if linear.R <= naive.R || linear.G <= naive.G {
		t.Errorf("linear %v should be brighter than naive %v", linear, naive)
	}
	if linear.A != 255 || naive.A != 255 {
		t.Errorf("alpha mismatch: linear %d, naive %d", linear.A, naive.A)
	}
}

// TestOverSRGBIdentityAllBytes checks every destination byte value survives
// a zero-alpha source untouched and an opaque destination survives a
// source-over with itself.
func TestOverSRGBIdentityAllBytes(t *testing.T) {
	src := color.ColorU8{R: 255, G: 176, B: 0, A: 0}
	for v := 0; v <= 255; v++ {
		dst := color.ColorU8{R: uint8(v), G: uint8(255 - v), B: uint8(v / 3), A: uint8(v)}
		if got := OverSRGB(src, dst); got != dst {
			t.Fatalf("OverSRGB(transparent, %v) = %v", dst, got)
		}
		opaque := color.ColorU8{R: uint8(v), G: uint8(v), B: uint8(v), A: 255}
		if got := OverSRGB(opaque, opaque); got != opaque {
			t.Fatalf("OverSRGB(%v, itself) = %v", opaque, got)
		}
	}
}

// naiveOver is the straight-alpha source-over formula applied to
// gamma-encoded bytes, the result gamma-correct blending must differ from.
func naiveOver(src, dst color.ColorU8) color.ColorU8 {
	sa := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*sa + float64(d)*(1-sa) + 0.5)
	}
	return color.ColorU8{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}

func BenchmarkOverSRGB(b *testing.B) {
	src := color.ColorU8{R: 255, G: 176, B: 0, A: 200}
	dst := color.ColorU8{R: 20, G: 20, B: 20, A: 255}
	var out color.ColorU8
	for i := 0; i < b.N; i++ {
		src.A = uint8(i)
		out = OverSRGB(src, dst)
	}
	_ = out
}
