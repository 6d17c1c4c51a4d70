package terrain

import "errors"

var (
	// ErrInvalidDimensions is returned by New for zero, negative or oversized grids.
	ErrInvalidDimensions = errors.New("terrain: invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate or rectangle leaves the grid.
	ErrOutOfBounds = errors.New("terrain: out of bounds")
)

// ErrInvalidMaterial is returned when painting an undeclared or transient material.
var ErrInvalidMaterial = errors.New("terrain: invalid material")
