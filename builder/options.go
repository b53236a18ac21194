// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// options.go - functional options for builders.
//
// Option constructors validate eagerly and panic on meaningless values.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithLabels sets the vertex label generator: local index -> label.
// Panics on nil.
func WithLabels(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeights draws every arc weight uniformly from the closed interval
// [min, max]. Negative bounds are allowed. When min == max the weight is
// constant and no RNG is needed.
// Panics with ErrBadWeightRange if min > max or the interval holds more than
// math.MaxInt64 values.
func WithWeights(min, max int64) BuilderOption {
	if min > max {
		panic(ErrBadWeightRange)
	}
	if span := max - min; span < 0 || span == math.MaxInt64 {
		panic(ErrBadWeightRange)
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = min, max
	}
}
