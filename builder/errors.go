// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w, never by redefining sentinels.
//   - Invalid option values panic in the WithX constructor instead.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step without an RNG; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeightRange indicates an empty or unrepresentable weight interval.
// WithWeights panics with this value.
var ErrBadWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates that construction could not proceed (nil
// constructor, or the graph rejected an arc).
var ErrConstructFailed = errors.New("builder: construction failed")
