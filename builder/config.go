// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is resolved once per BuildGraph call and never mutated after.
type builderConfig struct {
	idFn     func(int) string       // global vertex index → city name
	rng      *rand.Rand             // nil unless WithSeed/WithRand
	weightFn func(*rand.Rand) int64 // road length per emitted edge
}

// defaultConstWeight is the road length used when no WeightFn is set.
const defaultConstWeight = int64(1)

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn names vertex i "C<i>".
func DefaultIDFn(i int) string {
	return "C" + strconv.Itoa(i)
}

// WithIDScheme names vertices with fn(globalIndex).
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic choice.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn draws each road length from fn.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
