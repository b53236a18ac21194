// SPDX-License-Identifier: MIT

// Package core provides the graph side of the shortest-path suite: the
// Digraph contract every solver is written against, and Graph, a thread-safe
// arena+index directed weighted graph that satisfies it.
//
// Vertices are addressed by VertexID, a dense index in [0, VertexCount()).
// Nothing in the solvers depends on pointer identity; a VertexID is valid for
// as long as the graph is not mutated.
//
// The Digraph contract:
//
//	VertexCount() int                            // number of vertices n
//	Adjacent(v VertexID) ([]VertexID, error)     // out-neighbours of v, deterministic order
//	Weight(from, to VertexID) (int64, error)     // weight of the arc from→to
//
// Graph behavior:
//
//   - Directed, weighted (int64), at most one arc per ordered pair.
//   - Self-loops only with WithLoops().
//   - Adjacent returns out-neighbours in arc insertion order.
//   - RemoveVertex(v) deletes v with its incident arcs and shifts every ID
//     greater than v down by one. Removing the highest ID therefore leaves
//     all other IDs untouched.
//   - One sync.RWMutex guards the whole graph: queries take the read lock,
//     mutations the write lock.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) VertexID          // O(1) amortized
//	AddVertices(labels ...string) []VertexID  // O(k)
//	RemoveVertex(v VertexID) error            // O(V+E)
//	HasVertex(v VertexID) bool                // O(1)
//	Label(v VertexID) (string, error)         // O(1)
//
//	// Arc lifecycle
//	AddEdge(from, to VertexID, w int64) error // O(1) amortized
//	SetWeight(from, to VertexID, w int64) error
//	RemoveEdge(from, to VertexID) error       // O(deg(from))
//	HasEdge(from, to VertexID) bool
//
//	// Copies
//	Clone() *Graph                            // O(V+E)
//	FromDigraph(d Digraph) (*Graph, error)    // O(V+E) through the contract
//
// Errors:
//
//	ErrNilGraph        – nil graph handed to an operation
//	ErrVertexNotFound  – VertexID outside [0, VertexCount())
//	ErrEdgeNotFound    – no arc for the ordered pair
//	ErrEdgeExists      – second arc for the same ordered pair
//	ErrLoopNotAllowed  – self-loop without WithLoops()
package core
