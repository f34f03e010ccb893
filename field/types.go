package field

import "errors"

// Sentinel errors for field construction.
var (
	// ErrInvalidSize indicates a non-positive domain width or height.
	ErrInvalidSize = errors.New("field: domain width and height must be positive")
	// ErrNilNoise indicates that New was called without a noise provider.
	ErrNilNoise = errors.New("field: noise provider is nil")
)

// MaxCells bounds Width×Height of a field.
const MaxCells = 1 << 26

// Noise is an external scalar provider. Noise2D must be a pure function of its
// arguments and should return values in [-1, 1]; anything outside is clamped.
//
// *perlin.Perlin from github.com/aquilax/go-perlin satisfies Noise directly.
type Noise interface {
	Noise2D(x, y float64) float64
}

// NoiseFunc adapts an ordinary function to the Noise interface.
type NoiseFunc func(x, y float64) float64

// Noise2D calls f(x, y).
func (f NoiseFunc) Noise2D(x, y float64) float64 { return f(x, y) }

// Field is an immutable W×H lattice of angles in [0, 2π).
// angles is row-major: angles[y*Width+x].
type Field struct {
	Width, Height int
	angles        []float64
}
