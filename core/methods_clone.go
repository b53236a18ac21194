// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Copies: Clone (deep copy of a Graph) and FromDigraph (copy of any contract implementation).
// Determinism:
//   - Copies keep vertex IDs and per-vertex arc order.
// Concurrency:
//   - Read lock on the source; the copy is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: configuration, labels and arcs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make([]*vertex, len(g.vertices)),
		edgeCount:  g.edgeCount,
	}
	for i, vx := range g.vertices {
		nv := &vertex{
			label: vx.label,
			out:   make([]arc, len(vx.out)),
			index: make(map[VertexID]int, len(vx.out)),
		}
		copy(nv.out, vx.out)
		for pos, a := range nv.out {
			nv.index[a.to] = pos
		}
		clone.vertices[i] = nv
	}

	return clone
}

// FromDigraph copies any Digraph into a new Graph with the same vertex IDs
// and arc order. A *Graph source is cloned directly. The copy always allows
// self-loops so that any valid contract implementation can be represented.
//
// Errors from the source's Adjacent/Weight are returned wrapped; a source that
// reports the same head twice for one tail yields ErrEdgeExists.
//
// Complexity: O(V + E) contract calls.
func FromDigraph(d Digraph) (*Graph, error) {
	if d == nil {
		return nil, ErrNilGraph
	}
	if src, ok := d.(*Graph); ok {
		if src == nil {
			return nil, ErrNilGraph
		}
		clone := src.Clone()
		clone.allowLoops = true

		return clone, nil
	}

	edges, err := Snapshot(d)
	if err != nil {
		return nil, err
	}

	n := d.VertexCount()
	out := NewGraph(WithLoops(), WithCapacity(n))
	for i := 0; i < n; i++ {
		out.AddVertex("")
	}
	for _, e := range edges {
		if err = out.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}
