// Package placement orchestrates evenly-spaced streamline placement
// (Jobard–Lefer) over a noise-driven direction field.
//
// Algorithm Outline:
//  1. Init: trace one curve from Config.Start. If it has no steps there is
//     nothing to do. Otherwise register its points in the density grid and
//     append it to the accepted collection.
//  2. Grow: a cursor walks the accepted collection in creation order. For the
//     curve under the cursor, derive its seed candidates; every candidate that
//     passes the density check is traced. A new curve with fewer than
//     Config.MinSteps steps is discarded, otherwise it is registered and
//     appended. The cursor advances once the candidates are exhausted.
//  3. Terminal: the collection reaches Config.MaxCurves, or the cursor runs
//     past the last curve.
//
// The process is breadth-first and monotone: curves are never removed or
// revisited. Given identical Config the output is bit-identical.
//
// Errors:
//
//   - ErrInvalidConfig: Config.Validate failed (wraps the offending field).
//   - density.ErrCellFull: a density cell overflowed while registering a curve.
//     This is reported, never dropped: the cell capacity is too small for the
//     configuration. Run still returns the curves accepted before the failure.
//
// Logging goes through Logger(); it is silent unless SetLogger is called.
package placement
