// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/dijkstra"
)

// ExampleDijkstra finds the cheapest route in a small road network and
// prints its cost and the labels along it.
func ExampleDijkstra() {
	g := core.NewGraph()
	ids := g.AddVertices("depot", "mill", "bridge", "market")
	depot, mill, bridge, market := ids[0], ids[1], ids[2], ids[3]
	_ = g.AddEdge(depot, mill, 7)
	_ = g.AddEdge(depot, bridge, 2)
	_ = g.AddEdge(bridge, mill, 3)
	_ = g.AddEdge(mill, market, 1)
	_ = g.AddEdge(bridge, market, 9)

	res, err := dijkstra.Dijkstra(g, depot)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance(market)
	path, _ := res.PathTo(market)
	labels := make([]string, len(path))
	for i, v := range path {
		labels[i], _ = g.Label(v)
	}
	fmt.Println(d, labels)
	// Output: 6 [depot bridge mill market]
}

// ExampleWithMaxDistance caps the search radius; vertices beyond it stay unreached.
func ExampleWithMaxDistance() {
	g := core.NewGraph()
	g.AddVertices("0", "1", "2")
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 2)

	res, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(3))
	fmt.Println(res.Distances())
	// Output: [0 2 inf]
}
