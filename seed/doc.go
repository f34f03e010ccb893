// Package seed derives candidate starting points for new streamlines from an
// existing one.
//
// For every consecutive step pair (p_i, p_i+1) of a curve, excluding the last
// step, the tangent angle atan2(Δy, Δx) is taken and two points are emitted at
// distance d_sep from p_i, at tangent+π/2 (left) and tangent-π/2 (right).
// A curve with n steps therefore yields 2·(n-1) candidates, in step order, left
// before right. Nothing is deduplicated; the density grid filters repeats.
package seed
