// SPDX-License-Identifier: MIT

// Package johnson implements Johnson's all-pairs shortest-path algorithm for
// directed graphs that may carry negative arc weights.
//
// Steps:
//
//  1. Copy the input into a private core.Graph; the caller's graph is never mutated.
//  2. Add a synthetic source s with a 0-weight arc to every vertex.
//  3. Run Bellman-Ford from s. A negative cycle ends the run; s is removed either way.
//  4. Take potentials h(v) = dist(s, v) and re-weight every arc u→v to
//     w + h(u) - h(v), which is never negative.
//  5. Run Dijkstra from every vertex on the re-weighted copy.
//  6. Recover d(u, v) = d'(u, v) + h(v) - h(u).
//
// Complexity:
//
//   - Time:  O(V·E) for Bellman-Ford plus O(V·(V + E) log V) for the Dijkstra passes.
//   - Space: O(V² + E).
package johnson

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpaths/bellmanford"
	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/dijkstra"
	"github.com/katalvlaran/shortpaths/distance"
)

// syntheticLabel labels the temporary source vertex.
const syntheticLabel = "johnson:source"

// Johnson computes shortest distances between every ordered pair of vertices of g.
//
// A negative-weight cycle is not an error: the returned Result reports it via
// HasNegativeWeightCycles and holds no distances. An empty graph yields an
// empty Result without a cycle.
//
// Options customization:
//
//   - WithWorkers(k): run up to k Dijkstra passes concurrently.
func Johnson(g core.Digraph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Private working copy.
	if g == nil {
		return nil, ErrNilGraph
	}
	work, err := core.FromDigraph(g)
	if err != nil {
		if errors.Is(err, core.ErrNilGraph) {
			return nil, ErrNilGraph
		}
		return nil, fmt.Errorf("johnson: copy graph: %w", err)
	}
	n := work.VertexCount()
	if n == 0 {
		return &Result{}, nil
	}

	// 3) Potentials.
	h, cycle, err := potentials(work, n)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return &Result{n: n, negativeCycle: true, cycle: cycle}, nil
	}

	// 4) Re-weight.
	for _, e := range work.Edges() {
		if err = work.SetWeight(e.From, e.To, e.Weight+h[e.From]-h[e.To]); err != nil {
			return nil, fmt.Errorf("johnson: reweight %d→%d: %w", e.From, e.To, err)
		}
	}

	// 5-6) One Dijkstra per source.
	r := &runner{
		work:  work,
		h:     h,
		n:     n,
		dist:  make([]distance.Distance, n*n),
		trees: make([]*dijkstra.Result, n),
	}
	if err = r.solveAll(cfg.Workers); err != nil {
		return nil, err
	}

	return &Result{n: n, dist: r.dist, trees: r.trees}, nil
}

// potentials attaches a synthetic source to work, runs Bellman-Ford from it
// and returns h(v) for every input vertex. On a negative cycle h is nil
// and the witness cycle is returned instead. The synthetic source is removed
// on every path; it is the last vertex, so no other VertexID moves.
func potentials(work *core.Graph, n int) (h []int64, cycle []core.VertexID, err error) {
	s := work.AddVertex(syntheticLabel)
	defer func() {
		if rmErr := work.RemoveVertex(s); rmErr != nil && err == nil {
			err = fmt.Errorf("johnson: remove synthetic source: %w", rmErr)
		}
	}()

	for v := 0; v < n; v++ {
		if err = work.AddEdge(s, core.VertexID(v), 0); err != nil {
			return nil, nil, fmt.Errorf("johnson: attach synthetic source: %w", err)
		}
	}

	bf, err := bellmanford.BellmanFord(work, s)
	if err != nil {
		return nil, nil, fmt.Errorf("johnson: bellman-ford: %w", err)
	}
	if bf.HasNegativeCycle() {
		// s has no incoming arcs, so it never lies on the cycle.
		return nil, bf.NegativeCycle(), nil
	}

	h = make([]int64, n)
	for v := 0; v < n; v++ {
		d, qErr := bf.Distance(core.VertexID(v))
		if qErr != nil {
			return nil, nil, fmt.Errorf("johnson: potential of %d: %w", v, qErr)
		}
		// Every vertex is reachable from s.
		h[v] = d.MustValue()
	}

	return h, nil, nil
}

// runner holds the state shared by the per-source Dijkstra passes. Each pass
// writes only its own row of dist and its own slot of trees.
type runner struct {
	work  *core.Graph
	h     []int64
	n     int
	dist  []distance.Distance
	trees []*dijkstra.Result
}

// solveAll runs one pass per vertex with at most workers passes in flight
// and returns the first pass error.
func (r *runner) solveAll(workers int) error {
	var grp errgroup.Group
	grp.SetLimit(workers)
	for u := 0; u < r.n; u++ {
		u := core.VertexID(u)
		grp.Go(func() error {
			return r.solveFrom(u)
		})
	}

	return grp.Wait()
}

// solveFrom fills row u.
func (r *runner) solveFrom(u core.VertexID) error {
	res, err := dijkstra.Dijkstra(r.work, u)
	if err != nil {
		return fmt.Errorf("johnson: dijkstra from %d: %w", u, err)
	}

	row := r.dist[int(u)*r.n : int(u+1)*r.n]
	for v := 0; v < r.n; v++ {
		d, err := res.Distance(core.VertexID(v))
		if err != nil {
			return fmt.Errorf("johnson: dijkstra from %d: %w", u, err)
		}
		row[v] = d.AddWeight(r.h[v] - r.h[u])
	}
	r.trees[u] = res

	return nil
}
