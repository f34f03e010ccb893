package seed

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/evenlines/streamline"
)

// ErrInvalidSeparation indicates a non-positive offset distance.
var ErrInvalidSeparation = errors.New("seed: separation distance must be positive")

// Queue is a FIFO of candidate seed points. The zero value is an empty queue.
type Queue struct {
	points []r2.Vec
	head   int
}

// Push appends a candidate.
func (q *Queue) Push(p r2.Vec) { q.points = append(q.points, p) }

// Pop removes and returns the oldest candidate; ok is false when empty.
func (q *Queue) Pop() (p r2.Vec, ok bool) {
	if q.head >= len(q.points) {
		return r2.Vec{}, false
	}
	p = q.points[q.head]
	q.head++
	return p, true
}

// Len returns the number of candidates not yet popped.
func (q *Queue) Len() int { return len(q.points) - q.head }

// Empty reports whether no candidates remain.
func (q *Queue) Empty() bool { return q.Len() == 0 }

// Derive returns a queue holding the perpendicular offset candidates of c.
// Complexity: O(n) for n curve steps.
func Derive(c *streamline.Curve, sep float64) (*Queue, error) {
	if !(sep > 0) || math.IsInf(sep, 0) {
		return nil, fmt.Errorf("Derive: sep=%g: %w", sep, ErrInvalidSeparation)
	}
	q := &Queue{}
	n := c.Len()
	if n < 2 {
		return q, nil
	}
	q.points = make([]r2.Vec, 0, 2*(n-1))
	for i := 0; i < n-1; i++ {
		left, right := Offsets(c.Step(i).Pos(), c.Step(i+1).Pos(), sep)
		q.Push(left)
		q.Push(right)
	}

	return q, nil
}

// Offsets returns the two points at distance sep from p, perpendicular to the
// direction p→next: left at tangent+π/2, right at tangent-π/2.
func Offsets(p, next r2.Vec, sep float64) (left, right r2.Vec) {
	d := r2.Sub(next, p)
	angle := math.Atan2(d.Y, d.X)
	left = r2.Add(p, r2.Scale(sep, unit(angle+math.Pi/2)))
	right = r2.Add(p, r2.Scale(sep, unit(angle-math.Pi/2)))
	return left, right
}

func unit(angle float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}
