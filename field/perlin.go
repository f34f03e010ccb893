package field

import (
	perlin "github.com/aquilax/go-perlin"
)

// NewPerlin returns a seeded Perlin noise provider.
//
// alpha is the weight of each successive octave (the sum is divided by alpha),
// beta is the harmonic scaling between octaves and octaves the number of
// iterations. Two providers built with identical arguments produce identical
// values, which is what makes placement runs reproducible.
func NewPerlin(seed int64, alpha, beta float64, octaves int32) *perlin.Perlin {
	return perlin.NewPerlin(alpha, beta, octaves, seed)
}

// NewDefaultPerlin returns NewPerlin(seed, DefaultAlpha, DefaultBeta, DefaultOctaves).
func NewDefaultPerlin(seed int64) *perlin.Perlin {
	return NewPerlin(seed, DefaultAlpha, DefaultBeta, DefaultOctaves)
}
