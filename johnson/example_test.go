// SPDX-License-Identifier: MIT

package johnson_test

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/johnson"
)

// ExampleJohnson prints the all-pairs distance table of a graph with negative
// arcs but no negative cycle.
func ExampleJohnson() {
	g := core.NewGraph()
	g.AddVertices("a", "b", "c", "d")
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, -2)
	_ = g.AddEdge(1, 0, -1)
	_ = g.AddEdge(2, 0, 4)
	_ = g.AddEdge(2, 3, 1)

	res, err := johnson.Johnson(g, johnson.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for u := 0; u < res.Len(); u++ {
		label, _ := g.Label(core.VertexID(u))
		fmt.Print(label, ":")
		for v := 0; v < res.Len(); v++ {
			d, _ := res.Distance(core.VertexID(u), core.VertexID(v))
			fmt.Print(" ", d)
		}
		fmt.Println()
	}
	// Output:
	// a: 0 2 -2 -1
	// b: -1 0 -3 -2
	// c: 4 6 0 1
	// d: inf inf inf 0
}

// ExampleResult_HasNegativeWeightCycles shows that a negative cycle is
// reported on the result, not returned as an error.
func ExampleResult_HasNegativeWeightCycles() {
	g := core.NewGraph()
	g.AddVertices("x", "y")
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 0, -3)

	res, err := johnson.Johnson(g)
	fmt.Println(err, res.HasNegativeWeightCycles(), res.Len())
	// Output: <nil> true 0
}
