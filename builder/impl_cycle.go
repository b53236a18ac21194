// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// impl_cycle.go - Cycle(n): directed ring 0→1→…→n-1→0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Arcs emitted in order i→(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex directed cycle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.requireRand(methodCycle); err != nil {
			return err
		}

		ids := addVertices(g, cfg, n)
		// for i==n-1 the arc closes the ring back to 0
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			w := cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
