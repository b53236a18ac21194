// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted directed graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay Infinite.
//	– InfEdgeThreshold: arcs with weight >= this threshold are treated as impassable.
//	– OnRelax:          hook invoked on every successful relaxation.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNegativeWeight  if a negative arc weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic from WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
	"github.com/katalvlaran/shortpaths/sssp"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative arc weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all arcs (including zero-weight arcs) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// RelaxFunc observes a successful relaxation of the arc from→to; d is the new
// tentative distance of to.
type RelaxFunc func(from, to core.VertexID, d distance.Distance)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this value are not reached.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat arcs with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64     // Maximum distance to explore
	InfEdgeThreshold int64     // Weight threshold above which arcs are non-traversable
	OnRelax          RelaxFunc // Optional relaxation hook
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value stay Infinite.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance)
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// considered non-traversable. Panics with ErrBadInfThreshold on zero or a
// negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold)
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnRelax installs a relaxation hook.
func WithOnRelax(fn RelaxFunc) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no arcs treated as impassable).
//   - OnRelax:          nil.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the outcome of one Dijkstra run. It is read-only: the distance
// and predecessor table is filled by Dijkstra and only queried afterwards.
type Result struct {
	tree  *sssp.Tree
	order []core.VertexID
}

// Source returns the source vertex of the run.
func (r *Result) Source() core.VertexID { return r.tree.Source() }

// Len returns the number of vertices in the distance table.
func (r *Result) Len() int { return r.tree.Len() }

// Distance returns the distance from the source to v.
func (r *Result) Distance(v core.VertexID) (distance.Distance, error) { return r.tree.Distance(v) }

// Predecessor returns the vertex preceding v on the recorded shortest path.
func (r *Result) Predecessor(v core.VertexID) (core.VertexID, bool, error) {
	return r.tree.Predecessor(v)
}

// PathTo returns one shortest path from the source to v, or nil if v is unreachable.
func (r *Result) PathTo(v core.VertexID) ([]core.VertexID, error) { return r.tree.PathTo(v) }

// Distances returns a copy of every distance, indexed by VertexID.
func (r *Result) Distances() []distance.Distance { return r.tree.Distances() }

// Order returns the vertices in the order they were settled (extracted with a
// finite distance). Distances along Order are non-decreasing; among vertices
// queued with equal keys the smaller VertexID is settled first. The returned
// slice is a copy.
func (r *Result) Order() []core.VertexID {
	return append([]core.VertexID(nil), r.order...)
}
