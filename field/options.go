package field

// Default sampling parameters. The frequency matches the noise library default
// the field was tuned against; Perlin noise vanishes on integer lattice points,
// so cells are sampled at (x·Frequency, y·Frequency).
const (
	DefaultFrequency = 0.01
	DefaultAlpha     = 2.0
	DefaultBeta      = 2.0
	DefaultOctaves   = 3
)

// Option customizes field construction.
type Option func(*config)

type config struct {
	frequency float64
}

func newConfig(opts ...Option) config {
	c := config{frequency: DefaultFrequency}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFrequency sets the scale applied to cell coordinates before they are
// handed to the noise provider. Panics if f <= 0.
func WithFrequency(f float64) Option {
	if f <= 0 {
		panic("field: WithFrequency(f<=0)")
	}
	return func(c *config) {
		c.frequency = f
	}
}
