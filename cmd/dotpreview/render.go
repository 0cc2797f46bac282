package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/mndot/honeybee"
)

// renderSign draws every LED of p as a soft dot: unlit LEDs first, then lit
// LEDs over them, each as its own layer.
func renderSign(s settings, p pattern) *honeybee.Raster {
	width := uint32(math.Ceil(float64(float32(s.Columns) * s.Pitch)))
	height := uint32(math.Ceil(float64(float32(s.Rows) * s.Pitch)))

	m := honeybee.NewMask(honeybee.NewRaster(width, height, s.background))
	stamp := func(lit bool) {
		for y, row := range p {
			for x, on := range row {
				if on == lit {
					cx := (float32(x) + 0.5) * s.Pitch
					cy := (float32(y) + 0.5) * s.Pitch
					m.Circle(cx, cy, s.DotRadius)
				}
			}
		}
	}

	stamp(false)
	m.Composite(s.unlit)
	m.Clear()
	stamp(true)
	m.Composite(s.lit)

	return m.Raster()
}

// upscale enlarges img by an integer factor with the given interpolator.
func upscale(img image.Image, factor int, interp draw.Interpolator) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	interp.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
