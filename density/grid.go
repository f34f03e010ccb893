package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// neighbourOffsets covers the query cell and its 8 neighbours.
var neighbourOffsets = [9][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// New allocates an empty grid for a width×height domain with cell side sep
// and at most capacity points per cell.
// The grid has floor(width/sep)+2 columns and floor(height/sep)+2 rows: the
// extra two are the leading guard and room for the +1 shift.
// Complexity: O(C×R).
func New(width, height, sep float64, capacity int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%g, %g): %w", width, height, ErrInvalidSize)
	}
	if sep <= 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
		return nil, fmt.Errorf("New: sep=%g: %w", sep, ErrInvalidSeparation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("New: capacity=%d: %w", capacity, ErrInvalidCapacity)
	}
	if n, ok := CellCount(width, height, sep); !ok {
		return nil, fmt.Errorf("New: %g×%g at sep=%g needs %g cells, max %d: %w",
			width, height, sep, n, MaxCells, ErrInvalidSeparation)
	}
	cols := int(width/sep) + 2
	rows := int(height/sep) + 2

	return &Grid{
		Width:      width,
		Height:     height,
		Cols:       cols,
		Rows:       rows,
		Separation: sep,
		Capacity:   capacity,
		minDist:    sep * (1 - DefaultEpsilon),
		cells:      make([][]r2.Vec, cols*rows),
	}, nil
}

// CellCount returns the number of cells New would allocate for the given
// domain and separation, and whether that count is within MaxCells.
// The count is computed in floating point so it cannot overflow.
func CellCount(width, height, sep float64) (float64, bool) {
	n := (math.Floor(width/sep) + 2) * (math.Floor(height/sep) + 2)
	return n, n <= MaxCells
}

// CellIndex maps a continuous coordinate to its (col, row) cell.
// Only meaningful for points inside the domain.
// Complexity: O(1).
func (g *Grid) CellIndex(x, y float64) (col, row int) {
	return int(math.Floor(x/g.Separation)) + 1, int(math.Floor(y/g.Separation)) + 1
}

// InDomain reports whether 0 < x < Width and 0 < y < Height.
// Complexity: O(1).
func (g *Grid) InDomain(x, y float64) bool {
	return x > 0 && y > 0 && x < g.Width && y < g.Height
}

// IsFarEnough reports whether (x, y) is inside the domain and farther than
// Separation·(1-ε) from every stored point in its 3×3 cell neighbourhood.
// Complexity: O(k) for k neighbourhood points.
func (g *Grid) IsFarEnough(x, y float64) bool {
	if !g.InDomain(x, y) {
		return false
	}
	p := r2.Vec{X: x, Y: y}
	col, row := g.CellIndex(x, y)
	for _, d := range neighbourOffsets {
		c, r := col+d[0], row+d[1]
		if !g.inGrid(c, r) {
			continue
		}
		for _, q := range g.cells[g.index(c, r)] {
			if r2.Norm(r2.Sub(p, q)) <= g.minDist {
				return false
			}
		}
	}

	return true
}

// Insert stores (x, y) in its cell. The point is expected to have passed
// IsFarEnough; Insert still checks the domain and the cell capacity and
// leaves the grid untouched on error.
// Complexity: O(1) amortised.
func (g *Grid) Insert(x, y float64) error {
	if !g.InDomain(x, y) {
		return fmt.Errorf("Insert(%g, %g): %w", x, y, ErrOutOfDomain)
	}
	col, row := g.CellIndex(x, y)
	i := g.index(col, row)
	if len(g.cells[i]) >= g.Capacity {
		return &CellError{Col: col, Row: row, Capacity: g.Capacity, Point: r2.Vec{X: x, Y: y}}
	}
	g.cells[i] = append(g.cells[i], r2.Vec{X: x, Y: y})
	g.count++

	return nil
}

// InsertAll registers every point of a finished curve. It validates the whole
// batch first (domain and per-cell capacity, counting points of the batch that
// share a cell) so that a failing batch leaves the grid unchanged.
// Complexity: O(n).
func (g *Grid) InsertAll(points []r2.Vec) error {
	pending := make(map[int]int, len(points))
	for _, p := range points {
		if !g.InDomain(p.X, p.Y) {
			return fmt.Errorf("InsertAll(%g, %g): %w", p.X, p.Y, ErrOutOfDomain)
		}
		col, row := g.CellIndex(p.X, p.Y)
		i := g.index(col, row)
		pending[i]++
		if len(g.cells[i])+pending[i] > g.Capacity {
			return &CellError{Col: col, Row: row, Capacity: g.Capacity, Point: p}
		}
	}
	for _, p := range points {
		col, row := g.CellIndex(p.X, p.Y)
		i := g.index(col, row)
		g.cells[i] = append(g.cells[i], p)
	}
	g.count += len(points)

	return nil
}

// Len returns the number of stored points.
func (g *Grid) Len() int { return g.count }

// CellLen returns the number of points stored in cell (col, row), or 0 for a
// cell outside the grid.
func (g *Grid) CellLen(col, row int) int {
	if !g.inGrid(col, row) {
		return 0
	}
	return len(g.cells[g.index(col, row)])
}

// CellPoints returns a copy of the points stored in cell (col, row).
func (g *Grid) CellPoints(col, row int) []r2.Vec {
	if !g.inGrid(col, row) {
		return nil
	}
	src := g.cells[g.index(col, row)]
	out := make([]r2.Vec, len(src))
	copy(out, src)
	return out
}

func (g *Grid) inGrid(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// index maps (col,row) to a row-major offset: row*Cols + col.
func (g *Grid) index(col, row int) int {
	return row*g.Cols + col
}
