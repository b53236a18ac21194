// SPDX-License-Identifier: MIT

// Package sssp holds the single-source shortest-path result table shared by
// the bellmanford and dijkstra solvers.
//
// A Tree keeps one entry per vertex: the best known Distance from the source
// and the predecessor on one such path. Solvers fill it through Relax while
// they run; once the solver returns, the table is read-only.
//
// Queries:
//
//	Distance(v)    – Distance from source to v (Infinite if unreachable)
//	Predecessor(v) – previous vertex on the recorded path, if any
//	PathTo(v)      – source…v, or nil when v is unreachable
//
// Errors:
//
//	ErrSourceNotFound – NewTree with a source outside [0, n)
//	ErrUnknownVertex  – query for a vertex the table does not hold
//	                    (including any vertex after Clear)
package sssp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
)

var (
	// ErrSourceNotFound indicates that the source vertex is not part of the graph.
	ErrSourceNotFound = errors.New("sssp: source vertex not found")

	// ErrUnknownVertex indicates a query for a vertex absent from the result table.
	ErrUnknownVertex = errors.New("sssp: unknown vertex")
)

// entry is one row of the table.
type entry struct {
	dist    distance.Distance
	pred    core.VertexID
	hasPred bool
}

// Tree is the per-vertex result of a single-source run.
type Tree struct {
	source  core.VertexID
	entries []entry
}

// NewTree returns a table for n vertices where every vertex is unreachable
// except source, which sits at distance 0. No vertex has a predecessor.
func NewTree(n int, source core.VertexID) (*Tree, error) {
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrSourceNotFound, source, n)
	}

	entries := make([]entry, n) // zero Distance is Infinite
	entries[source].dist = distance.Finite(0)

	return &Tree{source: source, entries: entries}, nil
}

// Source returns the source vertex.
func (t *Tree) Source() core.VertexID { return t.source }

// Len returns the number of vertices held by the table (0 after Clear).
func (t *Tree) Len() int { return len(t.entries) }

// Distance returns the distance from the source to v.
func (t *Tree) Distance(v core.VertexID) (distance.Distance, error) {
	if !t.has(v) {
		return distance.Infinite(), fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return t.entries[v].dist, nil
}

// Predecessor returns the vertex preceding v on the recorded shortest path.
// ok is false for the source and for unreachable vertices.
func (t *Tree) Predecessor(v core.VertexID) (pred core.VertexID, ok bool, err error) {
	if !t.has(v) {
		return core.NoVertex, false, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	e := t.entries[v]
	if !e.hasPred {
		return core.NoVertex, false, nil
	}

	return e.pred, true, nil
}

// PathTo returns the vertices of a shortest path from the source to v, both
// ends included. It returns nil when v is unreachable and [source] for the
// source itself.
func (t *Tree) PathTo(v core.VertexID) ([]core.VertexID, error) {
	d, err := t.Distance(v)
	if err != nil {
		return nil, err
	}
	if d.IsInfinite() {
		return nil, nil
	}

	path := []core.VertexID{v}
	for e := t.entries[v]; e.hasPred; e = t.entries[e.pred] {
		// A well-formed predecessor chain is acyclic and at most Len() long.
		if len(path) > len(t.entries) {
			return nil, fmt.Errorf("sssp: predecessor chain of %d does not reach source %d", v, t.source)
		}
		path = append(path, e.pred)
	}
	reverse(path)

	return path, nil
}

// Distances returns a copy of every vertex's distance, indexed by VertexID.
func (t *Tree) Distances() []distance.Distance {
	out := make([]distance.Distance, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.dist
	}

	return out
}

// Relax tries to improve v through the arc u→v of weight w:
// if dist(u)+w < dist(v), it records the new distance and u as v's
// predecessor and reports true. An infinite dist(u) never improves anything.
//
// Relax is for solvers filling the table. A vertex outside the table never
// relaxes. Solvers keep the Tree private and hand out read-only results.
func (t *Tree) Relax(u, v core.VertexID, w int64) bool {
	if !t.has(u) || !t.has(v) {
		return false
	}
	cand := t.entries[u].dist.AddWeight(w)
	if !cand.Less(t.entries[v].dist) {
		return false
	}
	t.entries[v] = entry{dist: cand, pred: u, hasPred: true}

	return true
}

// Clear drops every entry. Later queries fail with ErrUnknownVertex.
func (t *Tree) Clear() {
	t.entries = nil
}

func (t *Tree) has(v core.VertexID) bool {
	return v >= 0 && int(v) < len(t.entries)
}

func reverse(s []core.VertexID) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
