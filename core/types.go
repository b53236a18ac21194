// SPDX-License-Identifier: MIT

// File: types.go
// Role: Digraph contract, VertexID/Edge/Graph types, options, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a second arc for an ordered pair that already has one.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// VertexID is a dense vertex handle in [0, VertexCount()).
type VertexID int

// NoVertex is the VertexID used where no vertex applies.
const NoVertex VertexID = -1

// Digraph is the read-only structural contract consumed by the solvers.
//
// Implementations must number vertices densely from 0 and must return
// out-neighbours in a deterministic order, so repeated runs relax arcs in
// the same sequence.
type Digraph interface {
	// VertexCount returns the number of vertices n.
	VertexCount() int

	// Adjacent returns the heads of all arcs leaving v.
	Adjacent(v VertexID) ([]VertexID, error)

	// Weight returns the weight of the arc from→to.
	Weight(from, to VertexID) (int64, error)
}

// Edge is a snapshot of one weighted arc.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight int64
}

// arc is the stored form of an out-arc.
type arc struct {
	to     VertexID
	weight int64
}

// vertex is one arena slot: optional label plus ordered out-arcs.
// index maps a head to its position in out.
type vertex struct {
	label string
	out   []arc
	index map[VertexID]int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex arena for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]*vertex, 0, n)
		}
	}
}

// Graph is a directed, weighted, arena+index graph.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices  []*vertex // VertexID → slot
	edgeCount int
}

// compile-time contract check
var _ Digraph = (*Graph)(nil)

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
