package honeybee

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mndot/honeybee/internal/blend"
	"github.com/mndot/honeybee/internal/color"
)

// maskState tracks who currently holds a mask's raster.
type maskState uint8

const (
	maskAttached maskState = iota
	maskDetached
	maskConsumed
)

// Mask accumulates per-pixel intensity over a raster it owns.
// Values range from 0 (fully transparent) to 255 (fully opaque).
//
// A render stamps dots with Circle, blends them in one color with
// Composite, and may Clear and repeat for further layers. Raster ends the
// mask's life and hands the pixels back.
//
// A Mask is not safe for concurrent use.
type Mask struct {
	raster    *Raster
	state     maskState
	intensity []uint8
}

// NewMask creates a mask over r. The mask takes ownership of r; callers must
// not touch r again until it is returned by Raster.
// All intensity values are initialized to 0.
func NewMask(r *Raster) *Mask {
	return &Mask{
		raster:    r,
		intensity: make([]uint8, int(r.width)*int(r.height)),
	}
}

// attached returns the owned raster, panicking if it is not available.
func (m *Mask) attached() *Raster {
	switch m.state {
	case maskDetached:
		panic(ErrDetached)
	case maskConsumed:
		panic(ErrConsumed)
	}
	return m.raster
}

// Width returns the mask width.
func (m *Mask) Width() uint32 { return m.attached().Width() }

// Height returns the mask height.
func (m *Mask) Height() uint32 { return m.attached().Height() }

// Clear resets every intensity value to 0. The raster is left untouched.
func (m *Mask) Clear() {
	m.attached()
	clear(m.intensity)
}

// At returns the intensity at (x, y).
// It panics with ErrOutOfBounds if (x, y) lies outside the mask.
func (m *Mask) At(x, y uint32) uint8 {
	r := m.attached()
	if x >= r.width || y >= r.height {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, r.width, r.height))
	}
	return m.intensity[int(y)*int(r.width)+int(x)]
}

// Circle adds a radially attenuated dot centered at (cx, cy).
//
// Each pixel is sampled at its center. With ds the squared distance to the
// center divided by r², the pixel gains (1 - min(ds², 1)) * 255, truncated,
// using saturating addition. The dot is 255 at the center and fades to 0 at
// radius r. A non-positive radius, or a dot entirely off the raster, changes
// nothing.
func (m *Mask) Circle(cx, cy, r float32) {
	ras := m.attached()
	if !(r > 0) {
		return
	}
	x0, x1, ok := span(cx, r, ras.width)
	if !ok {
		return
	}
	y0, y1, ok := span(cy, r, ras.height)
	if !ok {
		return
	}

	// Explicit float32 conversions keep the compiler from fusing
	// multiply-adds; the output must match the float32 reference bit for bit.
	rs := float32(r * r)
	w := int(ras.width)
	for y := y0; y < y1; y++ {
		yd := cy - float32(y) - 0.5
		ys := float32(yd * yd)
		row := m.intensity[y*w : (y+1)*w]
		for x := x0; x < x1; x++ {
			xd := cx - float32(x) - 0.5
			xs := float32(xd * xd)
			ds := (xs + ys) / rs
			v := 1 - min(float32(ds*ds), 1)
			row[x] = addSaturating(row[x], uint8(float32(v*255)))
		}
	}
}

// span returns the clipped pixel range [lo, hi) covered by c±r on an axis
// of the given size.
func span(c, r float32, size uint32) (lo, hi int, ok bool) {
	flo := max(float32(math.Floor(float64(c-r))), 0)
	fhi := min(float32(math.Ceil(float64(c+r))), float32(size))
	if !(fhi > flo) {
		return 0, 0, false
	}
	return int(flo), int(fhi), true
}

func addSaturating(a, b uint8) uint8 {
	if s := a + b; s >= a {
		return s
	}
	return 255
}

// Composite blends clr over every raster pixel, using the intensity at that
// pixel as alpha. Blending happens in linear light: both colors are decoded
// from sRGB, combined with the Porter-Duff source-over operator, and encoded
// back. Pixels with zero intensity are left exactly as they were.
//
// Intensity is not reset; call Clear before starting an unrelated layer.
func (m *Mask) Composite(clr RGB) {
	ras := m.detach()

	Logger().Debug("honeybee: composite",
		slog.Uint64("width", uint64(ras.width)),
		slog.Uint64("height", uint64(ras.height)),
		slog.String("color", clr.Opaque().String()))

	src := color.ColorU8{R: clr[0], G: clr[1], B: clr[2]}
	pixels := ras.pixels
	for i, a := range m.intensity {
		if a == 0 {
			continue
		}
		p := pixels[i*4 : i*4+4 : i*4+4]
		src.A = a
		out := blend.OverSRGB(src, color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]})
		p[0], p[1], p[2], p[3] = out.R, out.G, out.B, out.A
	}

	m.reattach(ras)
}

// detach moves the raster out of the mask for the duration of a composite.
// If the composite never returns, the mask stays detached and any further
// use panics with ErrDetached.
func (m *Mask) detach() *Raster {
	r := m.attached()
	m.raster = nil
	m.state = maskDetached
	return r
}

func (m *Mask) reattach(r *Raster) {
	m.raster = r
	m.state = maskAttached
}

// Raster consumes the mask and returns its raster with all composited
// layers applied. Any later use of the mask panics with ErrConsumed.
func (m *Mask) Raster() *Raster {
	r := m.attached()
	m.raster = nil
	m.intensity = nil
	m.state = maskConsumed

	Logger().Debug("honeybee: mask consumed",
		slog.Uint64("width", uint64(r.width)),
		slog.Uint64("height", uint64(r.height)))
	return r
}
