// SPDX-License-Identifier: MIT

// Package johnson defines the result and options of Johnson's all-pairs
// shortest-path algorithm.
//
// Options:
//
//	– Workers: number of goroutines running the per-source Dijkstra passes.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph is nil.
//	– ErrNegativeCycle querying distances of a graph with a negative cycle.
//	– ErrUnknownVertex querying a vertex outside [0, Len()).
//	– ErrBadWorkers    if Workers < 1 (panic from WithWorkers).
package johnson

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/dijkstra"
	"github.com/katalvlaran/shortpaths/distance"
)

// Sentinel errors returned by Johnson and Result queries.
var (
	// ErrNilGraph indicates that a nil graph was passed to Johnson.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNegativeCycle indicates that no distances were computed because the
	// graph contains a negative-weight cycle.
	ErrNegativeCycle = errors.New("johnson: graph has a negative-weight cycle")

	// ErrUnknownVertex indicates a query for a vertex outside the result.
	ErrUnknownVertex = errors.New("johnson: unknown vertex")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("johnson: Workers must be at least 1")
)

// Options configures Johnson.
//
// Workers – number of Dijkstra passes allowed in flight at once. Must be ≥ 1.
// Default is 1 (sequential). The result does not depend on it.
type Options struct {
	Workers int
}

// Option is a functional option for Johnson.
type Option func(*Options)

// WithWorkers bounds the number of concurrent Dijkstra passes.
// Panics with ErrBadWorkers if k < 1.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadWorkers)
		}
		o.Workers = k
	}
}

// DefaultOptions returns Options for a sequential run.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Result holds all-pairs distances, or the report of a negative cycle.
//
// Distances are stored row-major: dist[from*n+to].
type Result struct {
	n             int
	negativeCycle bool
	cycle         []core.VertexID
	dist          []distance.Distance
	trees         []*dijkstra.Result // per-source runs over re-weighted arcs, for Path
}

// HasNegativeWeightCycles reports whether the graph has a negative-weight
// cycle anywhere. When true, no distances were computed.
func (r *Result) HasNegativeWeightCycles() bool { return r.negativeCycle }

// OK reports whether distances were computed.
func (r *Result) OK() bool { return !r.negativeCycle }

// Len returns the number of vertices covered by the distance table; 0 when a
// negative cycle was found.
func (r *Result) Len() int {
	if r.negativeCycle {
		return 0
	}

	return r.n
}

// NegativeCycle returns the vertices of one negative-weight cycle in arc
// order, or nil when there is none. The returned slice is a copy.
func (r *Result) NegativeCycle() []core.VertexID {
	if r.cycle == nil {
		return nil
	}

	return append([]core.VertexID(nil), r.cycle...)
}

// Distance returns the shortest distance from → to; Infinite if to is not
// reachable from from.
func (r *Result) Distance(from, to core.VertexID) (distance.Distance, error) {
	if err := r.check(from, to); err != nil {
		return distance.Infinite(), err
	}

	return r.dist[int(from)*r.n+int(to)], nil
}

// Path returns one shortest path from → to as a vertex sequence, or nil if to
// is not reachable from from.
func (r *Result) Path(from, to core.VertexID) ([]core.VertexID, error) {
	if err := r.check(from, to); err != nil {
		return nil, err
	}

	return r.trees[from].PathTo(to)
}

// check validates a query pair.
func (r *Result) check(from, to core.VertexID) error {
	if r.negativeCycle {
		return ErrNegativeCycle
	}
	if from < 0 || int(from) >= r.n || to < 0 || int(to) >= r.n {
		return fmt.Errorf("%w: pair (%d,%d), vertex count %d", ErrUnknownVertex, from, to, r.n)
	}

	return nil
}
