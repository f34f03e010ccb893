package density

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for density grid operations.
var (
	// ErrInvalidSize indicates a non-positive domain width or height.
	ErrInvalidSize = errors.New("density: domain width and height must be positive")
	// ErrInvalidSeparation indicates a non-positive separation distance.
	ErrInvalidSeparation = errors.New("density: separation distance must be positive")
	// ErrInvalidCapacity indicates a non-positive per-cell capacity.
	ErrInvalidCapacity = errors.New("density: cell capacity must be positive")
	// ErrOutOfDomain indicates an insertion outside the grid domain.
	ErrOutOfDomain = errors.New("density: point outside domain")
	// ErrCellFull indicates an insertion into a cell that is at capacity.
	ErrCellFull = errors.New("density: cell capacity exceeded")
)

// MaxCells bounds Cols×Rows. Grids beyond it come from a separation that is
// tiny relative to the domain and would not fit in memory.
const MaxCells = 1 << 24

// DefaultEpsilon is the relative slack subtracted from d_sep before distance
// comparisons, absorbing rounding in the distance computation.
const DefaultEpsilon = 0.01

// CellError reports which cell rejected an insertion. It wraps ErrCellFull.
type CellError struct {
	Col, Row int
	Capacity int
	Point    r2.Vec
}

func (e *CellError) Error() string {
	return fmt.Sprintf("density: cell (%d,%d) full at capacity %d, rejected (%g, %g)",
		e.Col, e.Row, e.Capacity, e.Point.X, e.Point.Y)
}

// Unwrap lets errors.Is(err, ErrCellFull) match.
func (e *CellError) Unwrap() error { return ErrCellFull }

// Grid is a uniform bucket grid over a Width×Height domain.
// cells is row-major: cells[row*Cols+col]. Grid is not safe for concurrent
// mutation; a placement run owns it exclusively.
type Grid struct {
	Width, Height float64
	Cols, Rows    int
	Separation    float64
	Capacity      int

	minDist float64 // Separation·(1-ε)
	cells   [][]r2.Vec
	count   int
}
