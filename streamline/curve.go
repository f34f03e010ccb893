package streamline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrCurveFull is returned by Append when the curve already holds MaxSteps steps.
var ErrCurveFull = errors.New("streamline: curve step budget exhausted")

// Direction tags which half of a curve a step was traced in.
type Direction int

const (
	// Start marks the seed point.
	Start Direction = iota
	// Backward marks steps traced against the field direction.
	Backward
	// Forward marks steps traced along the field direction.
	Forward
)

// String returns "start", "backward" or "forward".
func (d Direction) String() string {
	switch d {
	case Start:
		return "start"
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Step is one accepted point of a curve.
type Step struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Dir    Direction `json:"dir"`
	StepID int       `json:"step"` // append index within the curve
}

// Pos returns the step position as a vector.
func (s Step) Pos() r2.Vec { return r2.Vec{X: s.X, Y: s.Y} }

// Curve is an ordered, append-only list of at most MaxSteps steps.
// ID is the creation index assigned by the placer. The seed step shared by
// both halves is always step 0.
type Curve struct {
	ID       int
	MaxSteps int
	steps    []Step
}

// New returns an empty curve that accepts up to maxSteps steps.
// A negative maxSteps is treated as 0.
func New(id, maxSteps int) *Curve {
	if maxSteps < 0 {
		maxSteps = 0
	}
	return &Curve{ID: id, MaxSteps: maxSteps}
}

// Append adds a step. Returns ErrCurveFull once MaxSteps steps are stored.
// Complexity: O(1) amortised.
func (c *Curve) Append(x, y float64, dir Direction) error {
	if len(c.steps) >= c.MaxSteps {
		return fmt.Errorf("curve %d: %w", c.ID, ErrCurveFull)
	}
	c.steps = append(c.steps, Step{X: x, Y: y, Dir: dir, StepID: len(c.steps)})
	return nil
}

// Len returns the number of accepted steps (steps_taken).
func (c *Curve) Len() int { return len(c.steps) }

// Step returns the i-th step in trace order. Panics if i is out of range,
// like a slice index.
func (c *Curve) Step(i int) Step { return c.steps[i] }

// Steps returns a copy of the steps in trace order.
func (c *Curve) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Points returns the step positions in trace order.
func (c *Curve) Points() []r2.Vec {
	out := make([]r2.Vec, len(c.steps))
	for i, s := range c.steps {
		out[i] = s.Pos()
	}
	return out
}

// Ordered returns the steps in drawing order: backward steps from the far end
// towards the seed, the seed, then the forward steps.
// Complexity: O(n).
func (c *Curve) Ordered() []Step {
	out := make([]Step, 0, len(c.steps))
	for i := len(c.steps) - 1; i >= 0; i-- {
		if c.steps[i].Dir == Backward {
			out = append(out, c.steps[i])
		}
	}
	for _, s := range c.steps {
		if s.Dir != Backward {
			out = append(out, s)
		}
	}
	return out
}
