package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a tile code outside the known TileKind range.
	ErrUnknownTile = errors.New("gridgraph: unknown tile kind")
	// ErrOutOfBounds indicates a coordinate that does not lie on the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
