// Package trace walks a direction field from a seed point and produces one
// streamline.
//
// Algorithm Outline:
//  1. Record the seed as step 0 (Direction Start). If the seed lies outside
//     the field domain the curve is returned empty.
//  2. Backward half: from the seed, while the curve holds fewer than
//     MaxSteps/2 steps, read the angle θ at the current position and move by
//     -StepLength·(cos θ, sin θ). Stop without recording as soon as the new
//     position leaves the domain or is too close to an accepted point.
//  3. Forward half: restart at the seed and do the same with +StepLength
//     until the curve holds MaxSteps steps.
//
// The tracer only reads the density grid; the caller registers the finished
// curve. Consequently a curve is checked against previously accepted curves,
// not against itself.
//
// Complexity: O(MaxSteps · k), k = density neighbourhood size.
package trace
