package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidInput is the parent of every construction error; test with errors.Is.
	ErrInvalidInput = errors.New("gridgraph: invalid input")
	// ErrEmptyGrid indicates the input matrix has no rows or no cells at all.
	ErrEmptyGrid = fmt.Errorf("%w: grid must contain at least one cell", ErrInvalidInput)
	// ErrNegativeWeight indicates a cell weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: negative cell weight", ErrInvalidInput)
	// ErrInvalidWeight indicates a NaN or infinite cell weight.
	ErrInvalidWeight = fmt.Errorf("%w: cell weight must be finite", ErrInvalidInput)
	// ErrBadDiagonalCost indicates GridOptions.DiagonalCost is not positive and finite.
	ErrBadDiagonalCost = fmt.Errorf("%w: diagonal cost must be positive and finite", ErrInvalidInput)
	// ErrOutOfBounds indicates a coordinate with no cell behind it.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
