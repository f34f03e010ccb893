package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evenlines/field"
)

// TestNew_BadInput covers the construction error paths.
func TestNew_BadInput(t *testing.T) {
	_, err := field.New(0, 10, field.NewDefaultPerlin(1))
	require.ErrorIs(t, err, field.ErrInvalidSize)

	_, err = field.New(10, -1, field.NewDefaultPerlin(1))
	require.ErrorIs(t, err, field.ErrInvalidSize)

	_, err = field.New(1<<14, 1<<13, field.NewDefaultPerlin(1))
	require.ErrorIs(t, err, field.ErrInvalidSize)

	_, err = field.New(10, 10, nil)
	require.ErrorIs(t, err, field.ErrNilNoise)
}

// TestNew_RemapRange checks that every sampled angle lies in [0, 2π),
// including providers that overshoot [-1, 1].
func TestNew_RemapRange(t *testing.T) {
	wild := field.NoiseFunc(func(x, y float64) float64 {
		return 3*math.Sin(x*7) - 1.5*math.Cos(y*3)
	})
	f, err := field.New(40, 30, wild, field.WithFrequency(1))
	require.NoError(t, err)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			a := f.AngleAt(float64(x), float64(y))
			require.GreaterOrEqual(t, a, 0.0)
			require.Less(t, a, 2*math.Pi)
		}
	}
}

// TestNew_Mapping pins the value→angle mapping at its anchors.
func TestNew_Mapping(t *testing.T) {
	cases := []struct {
		v    float64
		want float64
	}{
		{-1, 0},
		{-0.5, math.Pi / 2},
		{0, math.Pi},
		{0.5, 3 * math.Pi / 2},
		{1, 0}, // 2π wraps
		{-7, 0},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		v := tc.v
		f, err := field.New(2, 2, field.NoiseFunc(func(_, _ float64) float64 { return v }))
		require.NoError(t, err)
		assert.InDelta(t, tc.want, f.AngleAt(1.5, 1.5), 1e-12, "v=%v", v)
	}
}

// TestAngleAt_FloorsCoordinates verifies that every point inside a cell
// reads that cell's angle and that the frequency scales noise inputs.
func TestAngleAt_FloorsCoordinates(t *testing.T) {
	var seen [][2]float64
	n := field.NoiseFunc(func(x, y float64) float64 {
		seen = append(seen, [2]float64{x, y})
		return x / 10
	})
	f, err := field.New(4, 2, n, field.WithFrequency(0.5))
	require.NoError(t, err)
	require.Len(t, seen, 8)
	require.Equal(t, [2]float64{1.5, 0.5}, seen[7])

	assert.Equal(t, f.AngleAt(3, 1), f.AngleAt(3.99, 1.01))
	assert.NotEqual(t, f.AngleAt(2.5, 1), f.AngleAt(3.5, 1))
}

// TestInDomain checks the open-interval boundary predicate.
func TestInDomain(t *testing.T) {
	f, err := field.Uniform(10, 5, 0)
	require.NoError(t, err)

	assert.True(t, f.InDomain(0.001, 0.001))
	assert.True(t, f.InDomain(9.999, 4.999))
	assert.False(t, f.InDomain(0, 1))
	assert.False(t, f.InDomain(1, 0))
	assert.False(t, f.InDomain(10, 1))
	assert.False(t, f.InDomain(1, 5))
	assert.False(t, f.InDomain(-1, 2))
}

// TestUniform wraps its argument into [0, 2π).
func TestUniform(t *testing.T) {
	f, err := field.Uniform(3, 3, -math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/2, f.AngleAt(1, 1), 1e-12)

	f, err = field.Uniform(3, 3, 5*math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, f.AngleAt(2, 2), 1e-12)
}

// TestPerlin_Deterministic builds two fields from identically seeded
// providers and expects identical lattices; a different seed must differ.
func TestPerlin_Deterministic(t *testing.T) {
	a, err := field.New(60, 60, field.NewDefaultPerlin(50))
	require.NoError(t, err)
	b, err := field.New(60, 60, field.NewDefaultPerlin(50))
	require.NoError(t, err)
	c, err := field.New(60, 60, field.NewDefaultPerlin(51))
	require.NoError(t, err)

	differs := false
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			fx, fy := float64(x), float64(y)
			require.Equal(t, a.AngleAt(fx, fy), b.AngleAt(fx, fy))
			if a.AngleAt(fx, fy) != c.AngleAt(fx, fy) {
				differs = true
			}
		}
	}
	assert.True(t, differs, "different seeds should give different fields")
}

// TestWithFrequency_Panics ensures option validation fails fast.
func TestWithFrequency_Panics(t *testing.T) {
	assert.Panics(t, func() { field.WithFrequency(0) })
	assert.Panics(t, func() { field.WithFrequency(-1) })
}
