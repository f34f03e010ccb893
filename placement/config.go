package placement

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evenlines/density"
	"github.com/katalvlaran/evenlines/field"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("placement: invalid config")

// Config holds every tunable of a placement run.
//
// Thread Safety: a Config is a plain value; Run copies it.
type Config struct {
	// Width and Height bound the domain (0,Width)×(0,Height).
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Separation is d_sep, the minimum distance between points of different curves.
	Separation float64 `json:"separation" yaml:"separation"`

	// MaxSteps caps the steps of one curve, seed included.
	MaxSteps int `json:"max_steps" yaml:"max_steps"`

	// MinSteps is the smallest step count a grown curve needs to be kept.
	MinSteps int `json:"min_steps" yaml:"min_steps"`

	// StepLength is the distance advanced per step.
	StepLength float64 `json:"step_length" yaml:"step_length"`

	// MaxCurves is the curve budget.
	MaxCurves int `json:"max_curves" yaml:"max_curves"`

	// CellCapacity bounds the points stored per density cell.
	CellCapacity int `json:"cell_capacity" yaml:"cell_capacity"`

	// Start is the seed of the first curve.
	Start Point `json:"start" yaml:"start"`

	// Noise configures the Perlin provider behind the direction field.
	Noise NoiseConfig `json:"noise" yaml:"noise"`
}

// Point is a plain coordinate pair.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NoiseConfig configures the direction field's noise provider.
type NoiseConfig struct {
	Seed      int64   `json:"seed" yaml:"seed"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Alpha     float64 `json:"alpha" yaml:"alpha"`
	Beta      float64 `json:"beta" yaml:"beta"`
	Octaves   int32   `json:"octaves" yaml:"octaves"`
}

// DefaultConfig returns the reference configuration: a 120×120 domain,
// d_sep 0.8, 30 steps of length 1.2 per curve, at least 5 steps to keep a
// grown curve, 1500 curves, noise seed 50, first seed at (45, 24).
func DefaultConfig() Config {
	const width = 120
	return Config{
		Width:        width,
		Height:       120,
		Separation:   0.8,
		MaxSteps:     30,
		MinSteps:     5,
		StepLength:   0.01 * width,
		MaxCurves:    1500,
		CellCapacity: 5000,
		Start:        Point{X: 45, Y: 24},
		Noise: NoiseConfig{
			Seed:      50,
			Frequency: field.DefaultFrequency,
			Alpha:     field.DefaultAlpha,
			Beta:      field.DefaultBeta,
			Octaves:   field.DefaultOctaves,
		},
	}
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return invalid("width", c.Width)
	case c.Height <= 0:
		return invalid("height", c.Height)
	case int64(c.Width)*int64(c.Height) > field.MaxCells:
		return invalid("width×height", int64(c.Width)*int64(c.Height))
	case !positive(c.Separation):
		return invalid("separation", c.Separation)
	case !gridFits(c):
		return invalid("separation", c.Separation)
	case c.MaxSteps <= 0:
		return invalid("max_steps", c.MaxSteps)
	case c.MinSteps < 0 || c.MinSteps > c.MaxSteps:
		return invalid("min_steps", c.MinSteps)
	case !positive(c.StepLength):
		return invalid("step_length", c.StepLength)
	case c.MaxCurves <= 0:
		return invalid("max_curves", c.MaxCurves)
	case c.CellCapacity <= 0:
		return invalid("cell_capacity", c.CellCapacity)
	case math.IsNaN(c.Start.X) || math.IsNaN(c.Start.Y):
		return invalid("start", c.Start)
	case !positive(c.Noise.Frequency):
		return invalid("noise.frequency", c.Noise.Frequency)
	case c.Noise.Alpha == 0 || math.IsNaN(c.Noise.Alpha):
		return invalid("noise.alpha", c.Noise.Alpha)
	case c.Noise.Octaves <= 0:
		return invalid("noise.octaves", c.Noise.Octaves)
	}
	return nil
}

// YAML marshals the config.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("placement: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("placement: read config: %w", err)
	}
	return ParseConfig(data)
}

// gridFits reports whether the density grid for c stays within density.MaxCells.
func gridFits(c Config) bool {
	_, ok := density.CellCount(float64(c.Width), float64(c.Height), c.Separation)
	return ok
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func invalid(name string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, name, v)
}
