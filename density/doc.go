// Package density implements the spatial density grid that enforces the
// minimum-separation constraint between accepted streamline points.
//
// What:
//
//   - Grid buckets points into square cells whose side equals the separation
//     distance d_sep, so every neighbour closer than d_sep lives in the query
//     cell or one of its 8 neighbours.
//   - Cell (col,row) = (floor(x/d_sep)+1, floor(y/d_sep)+1); column and row 0
//     are guards that keep the 3×3 scan branch-free at the low edges.
//   - Each cell holds at most Capacity points. Insertion beyond that is an
//     error (ErrCellFull), never a silent drop: a dropped point would leave a
//     hole every later query against that cell would miss.
//
// Why:
//
//   - Proximity queries in near-constant time regardless of how many curves
//     have been placed.
//
// Complexity:
//
//   - New:         O(C×R) time and memory, C×R = grid cells.
//   - IsFarEnough: O(k), k = points stored in the 3×3 neighbourhood.
//   - Insert:      O(1) amortised.
//   - InsertAll:   O(n) for n points, all-or-nothing.
//
// Errors:
//
//   - ErrInvalidSize:       non-positive domain size.
//   - ErrInvalidSeparation: non-positive d_sep, or a d_sep so small that the
//     grid would exceed MaxCells.
//   - ErrInvalidCapacity:   non-positive per-cell capacity.
//   - ErrOutOfDomain:       Insert called with a point outside the domain.
//   - ErrCellFull:          target cell is at capacity (wrapped in *CellError).
package density
