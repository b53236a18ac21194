// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// impl_path.go - Path(n): directed path 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Arcs emitted in order i→i+1 for i=0..n-2.
//
// Complexity: O(n) time, O(n) extra for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.requireRand(methodPath); err != nil {
			return err
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			w := cfg.weight()
			if err := g.AddEdge(ids[i], ids[i+1], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, ids[i], ids[i+1], w, err)
			}
		}

		return nil
	}
}
