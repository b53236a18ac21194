// SPDX-License-Identifier: MIT

// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on directed graphs with arbitrary (including negative) int64 weights.
//
// Overview:
//
//   - The solver runs exactly |V|-1 relaxation rounds. Each round visits the
//     vertices in ascending VertexID order and, for each, its out-arcs in the
//     order the graph's Adjacent reports them.
//   - A final full pass over all arcs detects a negative-weight cycle reachable
//     from the source: any arc that can still be relaxed proves one exists.
//   - All arithmetic uses distance.Distance, so an unreachable tail (Infinite)
//     never produces a finite candidate, whatever the sign of the weight.
//
// Negative cycles are a graph property, not an error. BellmanFord returns a
// Result with HasNegativeCycle() == true; its distance table is cleared, so
// Distance and PathTo return sssp.ErrUnknownVertex. NegativeCycle() returns
// one witness cycle found before the table was cleared. Check OK() (or
// HasNegativeCycle) before trusting distances.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V + E) (distance table plus one snapshot of the arcs)
//
// Errors (sentinel):
//
//   - ErrNilGraph:            nil graph.
//   - sssp.ErrSourceNotFound: source outside [0, VertexCount()).
//   - errors from the graph's Adjacent/Weight, wrapped.
//
// Example:
//
//	res, err := bellmanford.BellmanFord(g, s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.OK() {
//	    fmt.Println("negative cycle:", res.NegativeCycle())
//	    return
//	}
//	d, _ := res.Distance(v)
//
// Thread safety: a Result is immutable once returned. The graph is only read.
package bellmanford
