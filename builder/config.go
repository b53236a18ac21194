// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - labelFn = strconv.Itoa       ("0","1","2",...)
//   - rng     = nil                (no randomness unless seeded)
//   - weights = [1,1]              (constant unit weight)

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	labelFn func(int) string
	rng     *rand.Rand

	// Closed weight interval; equal bounds mean a constant weight.
	minWeight int64
	maxWeight int64
}

const defaultWeight = int64(1)

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:   strconv.Itoa,
		minWeight: defaultWeight,
		maxWeight: defaultWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// needsRand reports whether drawing a weight consumes the RNG.
func (c builderConfig) needsRand() bool {
	return c.minWeight != c.maxWeight
}

// weight draws the next arc weight. Callers must have checked needsRand
// against rng beforehand.
func (c builderConfig) weight() int64 {
	if !c.needsRand() {
		return c.minWeight
	}

	return c.minWeight + c.rng.Int63n(c.maxWeight-c.minWeight+1)
}

// requireRand returns ErrNeedRandSource, tagged with method, when the weight
// policy is stochastic and no RNG was configured.
func (c builderConfig) requireRand(method string) error {
	if c.needsRand() && c.rng == nil {
		return fmt.Errorf("%s: weights [%d,%d] need an rng: %w", method, c.minWeight, c.maxWeight, ErrNeedRandSource)
	}

	return nil
}
