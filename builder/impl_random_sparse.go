// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like digraph.
//
// Model:
//   - Each ordered pair (i,j) is an independent Bernoulli(p) trial.
//   - Self-loops are tried only when g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 or the weights are drawn (ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc, then j asc; a kept arc draws its weight right after
//     its trial, so a fixed seed yields the same graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples n vertices with independent
// arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate before any side effect.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.requireRand(methodRandomSparse); err != nil {
			return err
		}

		// 2) Vertices.
		ids := addVertices(g, cfg, n)
		loops := g.Looped()

		// 3) Trials.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !cfg.keep(p) {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomSparse, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli(p) trial. p ∈ {0,1} is decided without the RNG.
func (c builderConfig) keep(p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return c.rng.Float64() < p
}
