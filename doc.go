// Package honeybee renders soft-edged LED dots for sign previews.
//
// # Overview
//
// honeybee is a small software compositor. A [Raster] holds RGBA pixels; a
// [Mask] wrapped around it accumulates single-channel intensity from
// radially attenuated dots and blends that intensity, as alpha, over the
// raster in one flat color.
//
// # Quick Start
//
//	r := honeybee.NewRaster(96, 32, honeybee.Black)
//	m := honeybee.NewMask(r)
//
//	// Lit pixels
//	m.Circle(4.5, 4.5, 2)
//	m.Circle(9.5, 4.5, 2)
//	m.Composite(honeybee.Amber.RGB())
//
//	// Next layer
//	m.Clear()
//	m.Circle(14.5, 4.5, 2)
//	m.Composite(honeybee.RGB{40, 40, 40})
//
//	img := m.Raster().ToImage()
//
// # Color Handling
//
// Raster bytes are sRGB encoded with straight alpha. Compositing decodes
// both colors to linear light, applies the Porter-Duff source-over operator
// with premultiplied alpha, and re-encodes the result. Blending the encoded
// bytes directly would darken every soft edge.
//
// # Dot Shape
//
// A dot of radius r centered at (cx, cy) contributes
//
//	v = 1 - min(ds², 1),  ds = ((x+0.5-cx)² + (y+0.5-cy)²) / r²
//
// to each pixel, scaled to 0..255 and truncated. Contributions from
// overlapping dots add and saturate at 255.
//
// # Errors
//
// Misuse panics rather than returning errors: pixel access outside the
// raster panics with an error wrapping [ErrOutOfBounds], and touching a
// mask after [Mask.Raster] panics with [ErrConsumed]. Degenerate dots
// (radius <= 0, fully off the raster) are silently ignored.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) is sampled at its center (x+0.5, y+0.5)
package honeybee
