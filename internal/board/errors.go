package board

import "errors"

var (
	// ErrOutOfBounds is returned by grid accessors given a position outside
	// the grid dimensions.
	ErrOutOfBounds = errors.New("board: position out of bounds")

	// ErrInvalidConfig is returned by New when the grid dimensions are
	// non-positive or the generator provides fewer than MinIconTypes icon
	// types.
	ErrInvalidConfig = errors.New("board: invalid configuration")
)
