package trace

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/evenlines/streamline"
)

// ErrInvalidOptions indicates a non-positive step budget or step length.
var ErrInvalidOptions = errors.New("trace: MaxSteps and StepLength must be positive")

// Field is the read side of a direction field.
type Field interface {
	InDomain(x, y float64) bool
	AngleAt(x, y float64) float64
}

// Spacing answers whether a point keeps the minimum separation.
type Spacing interface {
	IsFarEnough(x, y float64) bool
}

// Options configures a single trace.
//   - MaxSteps:   upper bound on recorded steps, seed included.
//   - StepLength: distance advanced per step.
type Options struct {
	MaxSteps   int
	StepLength float64
}

// Validate checks that both options are positive.
func (o Options) Validate() error {
	if o.MaxSteps <= 0 || !(o.StepLength > 0) || math.IsInf(o.StepLength, 0) {
		return ErrInvalidOptions
	}
	return nil
}

// Trace grows curve id from start. See the package documentation for the
// exact procedure. Returns ErrInvalidOptions for unusable options.
func Trace(id int, start r2.Vec, opts Options, f Field, sp Spacing) (*streamline.Curve, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c := streamline.New(id, opts.MaxSteps)
	if !f.InDomain(start.X, start.Y) {
		return c, nil
	}
	if err := c.Append(start.X, start.Y, streamline.Start); err != nil {
		return nil, err
	}

	if err := walk(c, start, -opts.StepLength, opts.MaxSteps/2, streamline.Backward, f, sp); err != nil {
		return nil, err
	}
	if err := walk(c, start, opts.StepLength, opts.MaxSteps, streamline.Forward, f, sp); err != nil {
		return nil, err
	}

	return c, nil
}

// walk advances from p by signed step length h until c holds limit steps or a
// position is rejected.
func walk(c *streamline.Curve, p r2.Vec, h float64, limit int, dir streamline.Direction, f Field, sp Spacing) error {
	for c.Len() < limit {
		angle := f.AngleAt(p.X, p.Y)
		p = r2.Add(p, r2.Scale(h, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
		if !f.InDomain(p.X, p.Y) || !sp.IsFarEnough(p.X, p.Y) {
			return nil
		}
		if err := c.Append(p.X, p.Y, dir); err != nil {
			return err
		}
	}
	return nil
}
