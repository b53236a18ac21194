// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/AddVertices/RemoveVertex/HasVertex/Label/Vertices/VertexCount.
// Determinism:
//   - IDs are assigned densely in insertion order.
//   - RemoveVertex shifts higher IDs down by one; relative order is preserved.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddVertex appends a vertex with the given (possibly empty) label and returns its ID.
// Labels are informational and need not be unique.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(label)
}

// AddVertices appends one vertex per label and returns their IDs in order.
// Complexity: O(k).
func (g *Graph) AddVertices(labels ...string) []VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]VertexID, len(labels))
	for i, label := range labels {
		ids[i] = g.addVertexLocked(label)
	}

	return ids
}

func (g *Graph) addVertexLocked(label string) VertexID {
	g.vertices = append(g.vertices, &vertex{label: label, index: make(map[VertexID]int)})

	return VertexID(len(g.vertices) - 1)
}

// RemoveVertex deletes v together with every arc entering or leaving it.
// Every vertex with an ID greater than v is renumbered to ID-1, and all arcs
// are rewritten accordingly.
//
// Steps:
//  1. Validate v.
//  2. Drop v's out-arcs from the edge count.
//  3. For every other vertex: drop the arc into v, renumber heads above v.
//  4. Splice v out of the arena.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	g.edgeCount -= len(g.vertices[v].out)

	var (
		u  VertexID
		vx *vertex
	)
	for u = 0; int(u) < len(g.vertices); u++ {
		if u == v {
			continue
		}
		vx = g.vertices[u]
		if vx.removeArc(v) {
			g.edgeCount--
		}
		vx.shiftHeadsAbove(v)
	}

	g.vertices = append(g.vertices[:v], g.vertices[v+1:]...)

	return nil
}

// HasVertex reports whether v is a valid vertex handle.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(v)
}

func (g *Graph) hasVertexLocked(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices)
}

// Label returns the label v was created with.
func (g *Graph) Label(v VertexID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return "", fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return g.vertices[v].label, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, len(g.vertices))
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}

// removeArc drops the arc to head, keeping the remaining arcs in order.
// Reports whether an arc was removed.
func (vx *vertex) removeArc(head VertexID) bool {
	pos, ok := vx.index[head]
	if !ok {
		return false
	}
	vx.out = append(vx.out[:pos], vx.out[pos+1:]...)
	delete(vx.index, head)
	for i := pos; i < len(vx.out); i++ {
		vx.index[vx.out[i].to] = i
	}

	return true
}

// shiftHeadsAbove renumbers every head greater than removed to head-1.
func (vx *vertex) shiftHeadsAbove(removed VertexID) {
	shifted := false
	for i := range vx.out {
		if vx.out[i].to > removed {
			vx.out[i].to--
			shifted = true
		}
	}
	if !shifted {
		return
	}
	vx.index = make(map[VertexID]int, len(vx.out))
	for i, a := range vx.out {
		vx.index[a.to] = i
	}
}
