// Package streamline defines the traced curve: an append-only, capacity-bounded
// sequence of steps, each tagged with the half of the curve it belongs to.
//
// Storage order is trace order: the seed first, then the backward half as it
// was walked away from the seed, then the forward half. Ordered returns the
// drawing order (backward half reversed, seed, forward half), which is what a
// renderer wants for a single polyline.
package streamline
