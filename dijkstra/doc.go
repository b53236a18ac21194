// SPDX-License-Identifier: MIT

// Package dijkstra provides Dijkstra's shortest-path algorithm on directed
// graphs with non-negative int64 arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |arcs|.
//   - It relies on an index-addressable min-heap holding every vertex, with a
//     real decrease-key: a relaxed vertex moves up in place instead of being
//     pushed again.
//   - Results wrap the same sssp.Tree table as bellmanford, so Distance, PathTo and
//     Predecessor behave identically across solvers. A Result exposes queries only.
//
// When to use:
//
//   - Any static graph whose arc weights are all ≥ 0.
//   - Graphs with negative arcs must go through bellmanford, or through johnson,
//     which re-weights them before calling Dijkstra.
//
// Key features:
//
//   - Fail-fast precondition: a single negative arc anywhere in the graph makes
//     Dijkstra return ErrNegativeWeight before any relaxation.
//   - Deterministic: ties between equal keys break by smaller VertexID; Order()
//     exposes the settle sequence.
//   - MaxDistance: stops growing the tree beyond a distance cap.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as impassable.
//   - OnRelax: hook for tracing relaxations.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            nil graph.
//   - sssp.ErrSourceNotFound: source is not a vertex of the graph.
//   - ErrNegativeWeight:      some arc has a negative weight (wrapped with the arc).
//   - ErrBadMaxDistance:      panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold:     panic from WithInfEdgeThreshold on a value ≤ 0.
//
// API reference:
//
//	func Dijkstra(g core.Digraph, source core.VertexID, opts ...Option) (*Result, error)
//
//	res.Distance(v)  // distance.Distance, Infinite if unreachable
//	res.PathTo(v)    // []core.VertexID from source to v, nil if unreachable
//	res.Order()      // settle order
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent runs on the same *core.Graph are safe,
//     since core.Graph guards reads with its RWMutex; mutating the graph while a
//     run is in flight is not.
package dijkstra
