// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// impl_complete.go - Complete(n): complete digraph without loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Every ordered pair (i,j), i≠j, gets one arc; emission is i asc, then j asc.
//
// Complexity: O(n²) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.requireRand(methodComplete); err != nil {
			return err
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}
