package honeybee

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Raster is a rectangular RGBA pixel buffer.
//
// Pixels are stored row-major with the origin at the top-left, four bytes per
// pixel in R, G, B, A order. Color channels are sRGB encoded and not
// premultiplied. The dimensions never change after construction.
type Raster struct {
	width  uint32
	height uint32
	pixels []uint8
}

// NewRaster creates a raster with every pixel set to c.
// It panics with ErrTooLarge if the pixel store would not fit in memory
// addressable by an int.
func NewRaster(width, height uint32, c RGBA) *Raster {
	n := uint64(width) * uint64(height)
	if n > uint64(math.MaxInt)/4 {
		panic(fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height))
	}
	pixels := make([]uint8, int(n)*4)
	if len(pixels) > 0 {
		copy(pixels, c[:])
		// Double the filled prefix until the whole store is covered.
		for filled := 4; filled < len(pixels); filled *= 2 {
			copy(pixels[filled:], pixels[:filled])
		}
	}
	return &Raster{width: width, height: height, pixels: pixels}
}

// Width returns the width of the raster.
func (r *Raster) Width() uint32 {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() uint32 {
	return r.height
}

// Pixels returns the raw pixel data (RGBA format).
// It is shared with the raster, not copied.
func (r *Raster) Pixels() []uint8 {
	return r.pixels
}

// Set sets the color of a single pixel.
// It panics with ErrOutOfBounds if (x, y) lies outside the raster.
func (r *Raster) Set(x, y uint32, c RGBA) {
	i := r.offset(x, y)
	copy(r.pixels[i:i+4], c[:])
}

// Get returns the color of a single pixel.
// It panics with ErrOutOfBounds if (x, y) lies outside the raster.
func (r *Raster) Get(x, y uint32) RGBA {
	i := r.offset(x, y)
	return RGBA{r.pixels[i], r.pixels[i+1], r.pixels[i+2], r.pixels[i+3]}
}

func (r *Raster) offset(x, y uint32) int {
	if x >= r.width || y >= r.height {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, r.width, r.height))
	}
	return (int(y)*int(r.width) + int(x)) * 4
}

// ToImage copies the raster into a new image.NRGBA.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(r.width), int(r.height)))
	copy(img.Pix, r.pixels)
	return img
}

// At implements the image.Image interface.
// Coordinates outside the raster return transparent black.
func (r *Raster) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(r.width) || y >= int(r.height) {
		return color.NRGBA{}
	}
	c := r.Get(uint32(x), uint32(y))
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(r.width), int(r.height))
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}
