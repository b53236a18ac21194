// SPDX-License-Identifier: MIT

package bellmanford

import (
	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/sssp"
)

// BellmanFord computes shortest distances from source to every vertex of g.
//
// Steps:
//  1. Validate g and snapshot its arcs (ascending tail, contract order).
//  2. Initialise the table: source at 0, everything else Infinite.
//  3. Run |V|-1 rounds relaxing every arc.
//  4. Run one more full pass; if any arc still relaxes, record a witness
//     cycle, clear the table and flag the negative cycle.
//
// A negative cycle is reported through the Result, never as an error.
func BellmanFord(g core.Digraph, source core.VertexID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	tree, err := sssp.NewTree(n, source)
	if err != nil {
		return nil, err
	}
	arcs, err := core.Snapshot(g)
	if err != nil {
		return nil, err
	}

	r := &runner{tree: tree, arcs: arcs, n: n, onRelax: cfg.OnRelax}
	r.relaxRounds()

	res := &Result{tree: tree}
	if last, found := r.detectionPass(); found {
		res.negativeCycle = true
		res.cycle = r.witness(last)
		tree.Clear()
	}

	return res, nil
}

// runner holds the mutable state of a single run.
type runner struct {
	tree    *sssp.Tree
	arcs    []core.Edge
	n       int
	onRelax RelaxFunc
}

// relaxRounds performs exactly n-1 rounds over all arcs.
func (r *runner) relaxRounds() {
	var a core.Edge
	for round := 1; round < r.n; round++ {
		for _, a = range r.arcs {
			if r.tree.Relax(a.From, a.To, a.Weight) && r.onRelax != nil {
				d, _ := r.tree.Distance(a.To)
				r.onRelax(a.From, a.To, d)
			}
		}
	}
}

// detectionPass relaxes every arc once more and returns the head of the last
// arc that still improved, if any.
func (r *runner) detectionPass() (core.VertexID, bool) {
	last, found := core.NoVertex, false
	for _, a := range r.arcs {
		if r.tree.Relax(a.From, a.To, a.Weight) {
			last, found = a.To, true
		}
	}

	return last, found
}

// witness extracts a negative cycle from the predecessor links.
//
// A vertex improved in the detection pass lies on, or downstream of, a
// negative cycle in the predecessor graph. Walking n predecessor links from it
// is guaranteed to land on the cycle; from there the cycle is collected
// backwards and reversed into arc order.
func (r *runner) witness(from core.VertexID) []core.VertexID {
	x := from
	for i := 0; i < r.n; i++ {
		p, ok, _ := r.tree.Predecessor(x)
		if !ok {
			return nil
		}
		x = p
	}

	cycle := []core.VertexID{x}
	for y := r.pred(x); y != x; y = r.pred(y) {
		if y == core.NoVertex || len(cycle) > r.n {
			return nil
		}
		cycle = append(cycle, y)
	}
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle
}

func (r *runner) pred(v core.VertexID) core.VertexID {
	p, ok, _ := r.tree.Predecessor(v)
	if !ok {
		return core.NoVertex
	}

	return p
}
