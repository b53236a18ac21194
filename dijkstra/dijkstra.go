// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted directed graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative arc weights.
// Every vertex enters an index-addressable min-heap up front (source at 0,
// all others at Infinite); each extraction settles one vertex and relaxes its
// out-arcs, lowering neighbours' keys in place (decrease-key).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - V extractions and at most E decrease-key operations, each O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance table and the heap with its position index.
//   - O(E) for the arc snapshot read once from the graph.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(E)) to detect negative weights and fail fast,
//     before the heap is built.
//   - Ties between equal keys break by smaller VertexID, so runs are reproducible.
//   - Keys are only ever decreased; an extracted vertex is never re-queued.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Candidates beyond MaxDistance are dropped, leaving those vertices Infinite.
//   - A candidate whose sum would overflow int64 is dropped the same way, so
//     non-negative weights never produce a negative distance.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/sssp"
)

// Dijkstra computes shortest distances from source to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a vertex of g (sssp.ErrSourceNotFound).
//  3. No arc of g may have a negative weight (ErrNegativeWeight).
//
// Options customization:
//
//   - WithMaxDistance(x): vertices with distance > x stay Infinite (x ≥ 0).
//   - WithInfEdgeThreshold(t): arcs with weight ≥ t are skipped (t > 0).
//   - WithOnRelax(fn): observe every successful relaxation.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g core.Digraph, source core.VertexID, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	tree, err := sssp.NewTree(n, source)
	if err != nil {
		return nil, err
	}

	// 3) Read all arcs once and reject negative weights before any relaxation.
	arcs, err := core.Snapshot(g)
	if err != nil {
		return nil, err
	}
	for _, e := range arcs {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run.
	r := &runner{
		options: cfg,
		tree:    tree,
		arcs:    arcs,
		offsets: tailOffsets(arcs, n),
		order:   make([]core.VertexID, 0, n),
	}
	r.process()

	return &Result{tree: tree, order: r.order}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	tree    *sssp.Tree
	arcs    []core.Edge     // snapshot, grouped by tail
	offsets []int           // arcs[offsets[u]:offsets[u+1]] leave u
	order   []core.VertexID // settled vertices in extraction order
}

// process is the core loop. It extracts the vertex with the smallest key
// until the heap is empty or only unreachable vertices remain.
func (r *runner) process() {
	q := newVertexQueue(r.tree.Distances())
	for q.Len() > 0 {
		u, d := q.popMin()
		// Every remaining key is Infinite as well: nothing left is reachable.
		if d.IsInfinite() {
			break
		}
		r.order = append(r.order, u)
		r.relax(q, u)
	}
}

// relax examines each arc leaving u and lowers neighbours' keys on improvement.
// Assumes u's distance is final and finite.
func (r *runner) relax(q *vertexQueue, u core.VertexID) {
	du, _ := r.tree.Distance(u)

	for _, e := range r.arcs[r.offsets[u]:r.offsets[u+1]] {
		// Skip any arc marked impassable by InfEdgeThreshold.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// du+w would wrap past MaxInt64: the head is out of reach through u.
		if e.Weight > math.MaxInt64-du.MustValue() {
			continue
		}
		cand := du.AddWeight(e.Weight)
		if cand.MustValue() > r.options.MaxDistance {
			continue
		}
		if !r.tree.Relax(u, e.To, e.Weight) {
			continue
		}
		q.decrease(e.To, cand)
		if r.options.OnRelax != nil {
			r.options.OnRelax(u, e.To, cand)
		}
	}
}

// tailOffsets returns CSR-style offsets for arcs sorted by tail.
func tailOffsets(arcs []core.Edge, n int) []int {
	offsets := make([]int, n+1)
	for _, e := range arcs {
		offsets[e.From+1]++
	}
	for i := 1; i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	return offsets
}
