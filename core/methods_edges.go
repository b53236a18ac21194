// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Arc lifecycle & queries: AddEdge/SetWeight/RemoveEdge/HasEdge/Weight/Adjacent/Edges/EdgeCount.
// Determinism:
//   - Adjacent() and Edges() follow arc insertion order per tail vertex.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge inserts the arc from→to with weight w.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrEdgeExists if the ordered pair already has an arc (use SetWeight instead).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	vx := g.vertices[from]
	if _, ok := vx.index[to]; ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeExists, from, to)
	}
	vx.index[to] = len(vx.out)
	vx.out = append(vx.out, arc{to: to, weight: w})
	g.edgeCount++

	return nil
}

// SetWeight replaces the weight of the existing arc from→to.
// Complexity: O(1).
func (g *Graph) SetWeight(from, to VertexID, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	vx := g.vertices[from]
	pos, ok := vx.index[to]
	if !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	vx.out[pos].weight = w

	return nil
}

// RemoveEdge deletes the arc from→to.
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return err
	}
	if !g.vertices[from].removeArc(to) {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether the arc from→to exists. Unknown endpoints yield false.
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(from) {
		return false
	}
	_, ok := g.vertices[from].index[to]

	return ok
}

// Weight returns the weight of the arc from→to.
// Complexity: O(1).
func (g *Graph) Weight(from, to VertexID) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEndpointsLocked(from, to); err != nil {
		return 0, err
	}
	vx := g.vertices[from]
	pos, ok := vx.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return vx.out[pos].weight, nil
}

// Adjacent returns the heads of the arcs leaving v, in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(deg(v)).
func (g *Graph) Adjacent(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := g.vertices[v].out
	heads := make([]VertexID, len(out))
	for i, a := range out {
		heads[i] = a.to
	}

	return heads, nil
}

// EdgeCount returns the number of arcs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of every arc, ordered by tail ID and then by
// insertion order within the tail.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, vx := range g.vertices {
		for _, a := range vx.out {
			edges = append(edges, Edge{From: VertexID(u), To: a.to, Weight: a.weight})
		}
	}

	return edges
}

func (g *Graph) checkEndpointsLocked(from, to VertexID) error {
	if !g.hasVertexLocked(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.hasVertexLocked(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	return nil
}
