// SPDX-License-Identifier: MIT

// File: snapshot.go
// Role: Snapshot reads every arc of any Digraph once, in contract order.

package core

import "fmt"

// Snapshot returns every arc of d, ordered by tail ID ascending and then by
// the order Adjacent reports heads. Solvers that sweep all arcs repeatedly
// read the contract once through Snapshot.
//
// Complexity: O(V + E) contract calls.
func Snapshot(d Digraph) ([]Edge, error) {
	if d == nil {
		return nil, ErrNilGraph
	}

	var (
		edges []Edge
		heads []VertexID
		w     int64
		err   error
	)
	n := d.VertexCount()
	for u := VertexID(0); int(u) < n; u++ {
		if heads, err = d.Adjacent(u); err != nil {
			return nil, fmt.Errorf("core: adjacent(%d): %w", u, err)
		}
		for _, v := range heads {
			if w, err = d.Weight(u, v); err != nil {
				return nil, fmt.Errorf("core: weight(%d→%d): %w", u, v, err)
			}
			edges = append(edges, Edge{From: u, To: v, Weight: w})
		}
	}

	return edges, nil
}
