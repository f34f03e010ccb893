package field

import (
	"fmt"
	"math"
)

// New samples noise once per cell of a width×height domain and remaps each
// value v ∈ [-1, 1] to the angle (v+1)·π, wrapped into [0, 2π).
// Returns ErrInvalidSize or ErrNilNoise on bad input.
// Complexity: O(W×H) time and memory.
func New(width, height int, noise Noise, opts ...Option) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrInvalidSize)
	}
	if int64(width)*int64(height) > MaxCells {
		return nil, fmt.Errorf("New(%d, %d): more than %d cells: %w", width, height, MaxCells, ErrInvalidSize)
	}
	if noise == nil {
		return nil, ErrNilNoise
	}
	cfg := newConfig(opts...)

	f := &Field{
		Width:  width,
		Height: height,
		angles: make([]float64, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Noise2D(float64(x)*cfg.frequency, float64(y)*cfg.frequency)
			f.angles[f.index(x, y)] = toAngle(v)
		}
	}

	return f, nil
}

// Uniform returns a field whose every cell holds the same angle (wrapped into
// [0, 2π)). Useful for straight-line fixtures and calibration runs.
func Uniform(width, height int, angle float64) (*Field, error) {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return New(width, height, NoiseFunc(func(_, _ float64) float64 {
		return angle/math.Pi - 1
	}))
}

// toAngle clamps v to [-1, 1] and maps it onto [0, 2π).
func toAngle(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))
	a := math.Mod((v+1)*math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// InDomain reports whether (x, y) lies strictly inside the field domain.
// Complexity: O(1).
func (f *Field) InDomain(x, y float64) bool {
	return x > 0 && y > 0 && x < float64(f.Width) && y < float64(f.Height)
}

// AngleAt returns the angle of the cell containing (x, y).
// The caller guarantees InDomain(x, y).
// Complexity: O(1).
func (f *Field) AngleAt(x, y float64) float64 {
	return f.angles[f.index(int(x), int(y))]
}

// index maps (x,y) to a row-major offset: y*Width + x.
func (f *Field) index(x, y int) int {
	return y*f.Width + x
}
