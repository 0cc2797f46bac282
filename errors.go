package honeybee

import "errors"

var (
	// ErrOutOfBounds reports a pixel coordinate outside the raster.
	ErrOutOfBounds = errors.New("honeybee: pixel out of bounds")

	// ErrTooLarge reports raster dimensions whose pixel store cannot be allocated.
	ErrTooLarge = errors.New("honeybee: raster dimensions too large")

	// ErrDetached reports use of a mask while its raster is detached for compositing.
	ErrDetached = errors.New("honeybee: mask raster is detached")

	// ErrConsumed reports use of a mask after its raster was extracted.
	ErrConsumed = errors.New("honeybee: mask already consumed")

	// ErrInvalidColor reports a malformed hex color string.
	ErrInvalidColor = errors.New("honeybee: invalid color")
)
