// Package evenlines generates evenly-spaced, non-intersecting streamlines over
// a deterministic 2D direction field: the line-art skeleton used by
// generative plotter pipelines (Jobard–Lefer placement).
//
// Under the hood everything is organized into small packages, leaves first:
//
//	field/         Perlin-backed direction field, one angle per integer cell
//	density/       d_sep-sized bucket grid answering "is this point far enough"
//	streamline/    Curve: append-only, capacity-bounded steps with direction tags
//	seed/          perpendicular seed candidates derived from an existing curve
//	trace/         walks the field backward then forward from a seed
//	placement/     breadth-first orchestration, Config, logging, JSON export
//	cmd/evenlines  thin CLI around placement
//
// Quick example:
//
//	cfg := placement.DefaultConfig()
//	cfg.MaxCurves = 200
//	res, err := placement.Run(cfg)
//	if err != nil {
//		// ErrInvalidConfig or density.ErrCellFull
//	}
//	_ = res.WriteJSON(os.Stdout, true)
//
// Given the same Config, two runs produce bit-identical curves.
package evenlines
