// Package field samples a deterministic 2D direction field over a bounded
// integer domain.
//
// What:
//
//   - Field stores one angle (radians, [0, 2π)) per integer cell of a W×H domain.
//   - Angles come from an external Noise provider, queried once per cell at
//     construction time; the field is immutable afterwards.
//   - NewPerlin builds the default provider (seeded Perlin noise).
//
// Why:
//
//   - Streamline tracers need a cheap, side-effect-free angle lookup at any
//     continuous position; precomputing the lattice keeps tracing O(1) per step.
//
// Domain:
//
//	A point (x, y) is inside the domain iff 0 < x < W and 0 < y < H.
//	AngleAt floors its arguments; querying outside the domain is a caller
//	contract violation, callers check InDomain first.
//
// Complexity:
//
//   - New:     O(W×H) time and memory (one noise query per cell).
//   - AngleAt: O(1).
//
// Errors:
//
//   - ErrInvalidSize: width or height is not positive, or W×H exceeds MaxCells.
//   - ErrNilNoise:    no noise provider was supplied.
package field
