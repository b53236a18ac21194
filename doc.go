// SPDX-License-Identifier: MIT

// Package shortpaths is a shortest-path toolkit for weighted directed graphs
// with int64 arc weights, negative weights included.
//
// What is inside?
//
//	• distance/      Distance: an int64 that may be Infinite; infinity absorbs addition
//	• core/          Digraph contract + Graph, a thread-safe arena digraph with dense VertexIDs
//	• sssp/          Tree: the single-source distance/predecessor table shared by the solvers
//	• bellmanford/   Bellman-Ford with negative-cycle detection and a witness cycle
//	• dijkstra/      Dijkstra on non-negative arcs, indexed heap with decrease-key
//	• johnson/       Johnson's all-pairs shortest paths, optional worker pool
//	• floydwarshall/ dense O(V³) all-pairs baseline
//	• builder/       deterministic graph generators for tests and benchmarks
//
// Which solver?
//
//   - One source, no negative arcs: dijkstra.
//   - One source, negative arcs, or you need to know about negative cycles: bellmanford.
//   - Every pair on a sparse graph: johnson. Small dense graphs: floydwarshall.
//
// Every solver accepts any core.Digraph, not only *core.Graph: a type with
// VertexCount, Adjacent and Weight is enough.
//
// Quick example:
//
//	g := core.NewGraph()
//	ids := g.AddVertices("s", "a", "b")
//	_ = g.AddEdge(ids[0], ids[1], 4)
//	_ = g.AddEdge(ids[1], ids[2], -2)
//
//	res, _ := bellmanford.BellmanFord(g, ids[0])
//	d, _ := res.Distance(ids[2]) // 2
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/shortpaths
package shortpaths
