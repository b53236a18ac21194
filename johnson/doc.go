// SPDX-License-Identifier: MIT

// Package johnson computes all-pairs shortest paths on sparse directed graphs
// with possibly negative arc weights.
//
// Overview:
//
//   - One Bellman-Ford run from a synthetic source yields vertex potentials.
//   - Potentials re-weight every arc to a non-negative weight without changing
//     which paths are shortest.
//   - One Dijkstra run per vertex then fills the |V|×|V| distance table.
//
// When to use:
//
//   - Sparse graphs where V·E log V beats Floyd-Warshall's V³.
//   - Graphs with negative arcs; a negative cycle is reported, not hidden.
//
// Key features:
//
//   - The input graph is only read: work happens on a private copy.
//   - WithWorkers(k) spreads the Dijkstra passes over k goroutines; results are
//     identical for every k.
//   - Path(from, to) reconstructs a route from the per-source trees.
//
// API reference:
//
//	func Johnson(g core.Digraph, opts ...Option) (*Result, error)
//
//	res.HasNegativeWeightCycles()
//	res.Distance(from, to) // distance.Distance, Infinite if unreachable
//	res.Path(from, to)     // []core.VertexID, nil if unreachable
//	res.Len()              // vertices covered, 0 on a negative cycle
//
// Thread safety:
//
//   - A Result is immutable and safe for concurrent queries.
package johnson
