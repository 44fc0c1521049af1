// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: seeding via WithSeed or WithRand.

package pointgen

import "math/rand"

const (
	// DefaultMin is the default lower coordinate bound (inclusive).
	DefaultMin = 0.0
	// DefaultMax is the default upper coordinate bound (exclusive).
	DefaultMax = 1e6
	// DefaultDecimals is the default rounding precision.
	DefaultDecimals = 2
	// MaxDecimals bounds WithDecimals; beyond it float64 rounding is meaningless
	// for the default range.
	MaxDecimals = 9
)

// Option customizes Generate.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	rng        *rand.Rand // coordinate source
	min, max   float64    // half-open coordinate range [min, max)
	decimals   int        // rounding precision
	duplicates bool       // allow repeated coordinates
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		min:      DefaultMin,
		max:      DefaultMax,
		decimals: DefaultDecimals,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// WithSeed seeds a fresh deterministic RNG. Seed 0 maps to defaultRNGSeed.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the coordinate source. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the coordinate range [lo, hi) for both axes.
// Panics unless lo < hi and both are finite.
// Complexity: O(1).
func WithRange(lo, hi float64) Option {
	if !(lo < hi) || nonFinite(lo) || nonFinite(hi) {
		panic("pointgen: WithRange(lo>=hi or non-finite)")
	}
	return func(c *config) {
		c.min, c.max = lo, hi
	}
}

// WithDecimals sets the rounding precision to d decimal places.
// Panics unless 0 ≤ d ≤ MaxDecimals.
// Complexity: O(1).
func WithDecimals(d int) Option {
	if d < 0 || d > MaxDecimals {
		panic("pointgen: WithDecimals(d out of [0,MaxDecimals])")
	}
	return func(c *config) {
		c.decimals = d
	}
}

// WithDuplicates allows the same coordinates to be drawn more than once.
// Complexity: O(1).
func WithDuplicates() Option {
	return func(c *config) {
		c.duplicates = true
	}
}
