package placement_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evenlines/placement"
)

// TestDefaultConfig pins the reference tunables.
func TestDefaultConfig(t *testing.T) {
	cfg := placement.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
	assert.Equal(t, 0.8, cfg.Separation)
	assert.Equal(t, 30, cfg.MaxSteps)
	assert.Equal(t, 5, cfg.MinSteps)
	assert.InDelta(t, 1.2, cfg.StepLength, 1e-12)
	assert.Equal(t, 1500, cfg.MaxCurves)
	assert.Equal(t, 5000, cfg.CellCapacity)
	assert.Equal(t, placement.Point{X: 45, Y: 24}, cfg.Start)
	assert.Equal(t, int64(50), cfg.Noise.Seed)
}

// TestValidate_Rejects walks every validation branch.
func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*placement.Config){
		"width":           func(c *placement.Config) { c.Width = 0 },
		"height":          func(c *placement.Config) { c.Height = -2 },
		"separation":      func(c *placement.Config) { c.Separation = 0 },
		"separation inf":  func(c *placement.Config) { c.Separation = math.Inf(1) },
		"separation tiny": func(c *placement.Config) { c.Separation = 1e-9 },
		"width×height":    func(c *placement.Config) { c.Width, c.Height = 1<<20, 1<<20 },
		"max_steps":       func(c *placement.Config) { c.MaxSteps = 0 },
		"min_steps":       func(c *placement.Config) { c.MinSteps = -1 },
		"min>max":         func(c *placement.Config) { c.MinSteps = c.MaxSteps + 1 },
		"step_length":     func(c *placement.Config) { c.StepLength = math.NaN() },
		"max_curves":      func(c *placement.Config) { c.MaxCurves = 0 },
		"cell_capacity":   func(c *placement.Config) { c.CellCapacity = 0 },
		"start":           func(c *placement.Config) { c.Start.X = math.NaN() },
		"noise.frequency": func(c *placement.Config) { c.Noise.Frequency = 0 },
		"noise.alpha":     func(c *placement.Config) { c.Noise.Alpha = 0 },
		"noise.octaves":   func(c *placement.Config) { c.Noise.Octaves = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := placement.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), placement.ErrInvalidConfig)
		})
	}
}

// TestParseConfig_KeepsDefaults overrides a few keys and keeps the rest.
func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := placement.ParseConfig([]byte(`
max_curves: 50
start:
  x: 10
  y: 12.5
noise:
  seed: 7
`))
	require.NoError(t, err)

	want := placement.DefaultConfig()
	want.MaxCurves = 50
	want.Start = placement.Point{X: 10, Y: 12.5}
	want.Noise.Seed = 7
	assert.Equal(t, want, cfg)
}

// TestParseConfig_Errors covers malformed and invalid documents.
func TestParseConfig_Errors(t *testing.T) {
	_, err := placement.ParseConfig([]byte("width: [1, 2"))
	require.Error(t, err)

	_, err = placement.ParseConfig([]byte("separation: -1"))
	require.ErrorIs(t, err, placement.ErrInvalidConfig)
}

// TestLoadConfig_RoundTrip writes YAML() output to disk and loads it back.
func TestLoadConfig_RoundTrip(t *testing.T) {
	cfg := placement.DefaultConfig()
	cfg.Width = 200
	cfg.Noise.Frequency = 0.02

	data, err := cfg.YAML()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := placement.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = placement.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
