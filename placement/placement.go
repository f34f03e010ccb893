package placement

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/evenlines/density"
	"github.com/katalvlaran/evenlines/field"
	"github.com/katalvlaran/evenlines/seed"
	"github.com/katalvlaran/evenlines/streamline"
	"github.com/katalvlaran/evenlines/trace"
)

// placer owns all mutable state of one run.
type placer struct {
	cfg    Config
	rc     runConfig
	topts  trace.Options
	grid   *density.Grid
	curves []*streamline.Curve
	stats  Stats
}

// Run places streamlines according to cfg and returns the accepted curves.
//
// A start point outside the domain yields an empty Result and no error.
// Returns ErrInvalidConfig (and a nil Result) for a bad cfg. When CellCapacity
// is too small to register a curve, Run stops and returns the curves accepted
// so far together with a *density.CellError (matching density.ErrCellFull);
// the rejected curve is not part of the Result.
//
// Complexity: O(N·S·k) for N curves of S steps and k points per density
// neighbourhood, plus O(W×H) to build the field.
func Run(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.field == nil {
		noise := field.NewPerlin(cfg.Noise.Seed, cfg.Noise.Alpha, cfg.Noise.Beta, cfg.Noise.Octaves)
		f, err := field.New(cfg.Width, cfg.Height, noise, field.WithFrequency(cfg.Noise.Frequency))
		if err != nil {
			return nil, fmt.Errorf("placement: build field: %w", err)
		}
		rc.field = f
	}
	grid, err := density.New(float64(cfg.Width), float64(cfg.Height), cfg.Separation, cfg.CellCapacity)
	if err != nil {
		return nil, fmt.Errorf("placement: build density grid: %w", err)
	}

	p := &placer{
		cfg:    cfg,
		rc:     rc,
		topts:  trace.Options{MaxSteps: cfg.MaxSteps, StepLength: cfg.StepLength},
		grid:   grid,
		curves: make([]*streamline.Curve, 0, min(cfg.MaxCurves, 1024)),
	}
	if err = p.run(); err != nil {
		Logger().Error("placement stopped", "curves", p.stats.Accepted, "err", err)
		return p.result(), err
	}

	Logger().Info("placement finished",
		"curves", p.stats.Accepted,
		"points", p.stats.Points,
		"candidates", p.stats.Candidates,
		"rejected", p.stats.Rejected,
		"discarded", p.stats.Discarded,
	)

	return p.result(), nil
}

func (p *placer) result() *Result {
	return &Result{
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Curves: p.curves,
		Stats:  p.stats,
	}
}

func (p *placer) run() error {
	start := r2.Vec{X: p.cfg.Start.X, Y: p.cfg.Start.Y}
	first, err := p.trace(start)
	if err != nil {
		return err
	}
	if first.Len() == 0 {
		Logger().Debug("initial curve is empty", "x", start.X, "y", start.Y)
		return nil
	}
	if err = p.accept(first); err != nil {
		return err
	}

	for cursor := 0; cursor < len(p.curves) && !p.full(); cursor++ {
		q, err := seed.Derive(p.curves[cursor], p.cfg.Separation)
		if err != nil {
			return err
		}
		Logger().Debug("deriving seeds", "cursor", cursor, "candidates", q.Len())

		for !p.full() {
			cand, ok := q.Pop()
			if !ok {
				break
			}
			p.stats.Candidates++
			if !p.grid.IsFarEnough(cand.X, cand.Y) {
				p.stats.Rejected++
				continue
			}
			c, err := p.trace(cand)
			if err != nil {
				return err
			}
			if c.Len() < p.cfg.MinSteps {
				p.discard(c)
				continue
			}
			if err = p.accept(c); err != nil {
				return err
			}
		}
	}

	return nil
}

// trace grows the next curve; its ID is the slot it would take.
func (p *placer) trace(start r2.Vec) (*streamline.Curve, error) {
	p.stats.Traced++
	c, err := trace.Trace(len(p.curves), start, p.topts, p.rc.field, p.grid)
	if err != nil {
		return nil, fmt.Errorf("placement: trace curve %d: %w", len(p.curves), err)
	}
	return c, nil
}

// accept registers c in the density grid and appends it.
func (p *placer) accept(c *streamline.Curve) error {
	if err := p.grid.InsertAll(c.Points()); err != nil {
		return fmt.Errorf("placement: register curve %d: %w", c.ID, err)
	}
	p.curves = append(p.curves, c)
	p.stats.Accepted = len(p.curves)
	p.stats.Points = p.grid.Len()
	Logger().Debug("curve accepted", "id", c.ID, "steps", c.Len(), "total", len(p.curves))
	if p.rc.onAccept != nil {
		p.rc.onAccept(c, len(p.curves))
	}
	return nil
}

func (p *placer) discard(c *streamline.Curve) {
	p.stats.Discarded++
	Logger().Debug("curve discarded", "id", c.ID, "steps", c.Len(), "min", p.cfg.MinSteps)
	if p.rc.onDiscard != nil {
		p.rc.onDiscard(c)
	}
}

func (p *placer) full() bool {
	return len(p.curves) >= p.cfg.MaxCurves
}
