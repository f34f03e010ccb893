package placement

import (
	"github.com/katalvlaran/evenlines/streamline"
	"github.com/katalvlaran/evenlines/trace"
)

// Stats counts the decisions taken during a run.
//   - Candidates: seed candidates derived and examined.
//   - Rejected:   candidates that failed the density check.
//   - Traced:     curves traced, the initial one included.
//   - Discarded:  traced curves below MinSteps.
//   - Accepted:   curves kept (len(Result.Curves)).
//   - Points:     points registered in the density grid.
type Stats struct {
	Candidates int `json:"candidates"`
	Rejected   int `json:"rejected"`
	Traced     int `json:"traced"`
	Discarded  int `json:"discarded"`
	Accepted   int `json:"accepted"`
	Points     int `json:"points"`
}

// Result is the accepted-curve collection in creation order, plus run stats.
type Result struct {
	Width, Height int
	Curves        []*streamline.Curve
	Stats         Stats
}

// Option customizes a run.
type Option func(*runConfig)

type runConfig struct {
	field     trace.Field
	onAccept  func(c *streamline.Curve, total int)
	onDiscard func(c *streamline.Curve)
}

// WithField replaces the Perlin-backed direction field built from
// Config.Noise. The field must cover the Config domain. Panics on nil.
func WithField(f trace.Field) Option {
	if f == nil {
		panic("placement: WithField(nil)")
	}
	return func(rc *runConfig) {
		rc.field = f
	}
}

// WithOnAccept registers a hook called after each curve is registered, with
// the collection size including that curve. Panics on nil.
func WithOnAccept(fn func(c *streamline.Curve, total int)) Option {
	if fn == nil {
		panic("placement: WithOnAccept(nil)")
	}
	return func(rc *runConfig) {
		rc.onAccept = fn
	}
}

// WithOnDiscard registers a hook called for each curve dropped for being
// shorter than Config.MinSteps. Panics on nil.
func WithOnDiscard(fn func(c *streamline.Curve)) Option {
	if fn == nil {
		panic("placement: WithOnDiscard(nil)")
	}
	return func(rc *runConfig) {
		rc.onDiscard = fn
	}
}
