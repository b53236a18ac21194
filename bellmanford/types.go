// SPDX-License-Identifier: MIT

package bellmanford

import (
	"errors"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
	"github.com/katalvlaran/shortpaths/sssp"
)

// ErrNilGraph indicates that a nil graph was passed to BellmanFord.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// RelaxFunc observes a successful relaxation of the arc from→to; d is the new
// distance of to.
type RelaxFunc func(from, to core.VertexID, d distance.Distance)

// Options configures BellmanFord.
//
// OnRelax – optional hook invoked on every successful relaxation during the
// |V|-1 rounds (not during the detection pass).
type Options struct {
	OnRelax RelaxFunc
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// WithOnRelax installs a relaxation hook.
func WithOnRelax(fn RelaxFunc) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of one Bellman-Ford run. It is read-only: the
// distance and predecessor table is filled by BellmanFord and only queried
// afterwards.
type Result struct {
	tree          *sssp.Tree
	negativeCycle bool
	cycle         []core.VertexID
}

// Source returns the source vertex of the run.
func (r *Result) Source() core.VertexID { return r.tree.Source() }

// Len returns the number of vertices in the distance table; 0 after a
// negative cycle.
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

// HasNegativeCycle reports whether a negative-weight cycle is reachable from
// the source. When true, the distance table is empty.
func (r *Result) HasNegativeCycle() bool { return r.negativeCycle }

// OK reports whether no negative cycle was found, i.e. distances are valid.
func (r *Result) OK() bool { return !r.negativeCycle }

// NegativeCycle returns the vertices of one negative-weight cycle in arc
// order (the closing arc runs from the last vertex back to the first), or nil
// when there is none. The returned slice is a copy.
func (r *Result) NegativeCycle() []core.VertexID {
	if r.cycle == nil {
		return nil
	}

	return append([]core.VertexID(nil), r.cycle...)
}
