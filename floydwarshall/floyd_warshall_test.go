// SPDX-License-Identifier: MIT

package floydwarshall_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
	"github.com/katalvlaran/shortpaths/floydwarshall"
)

// Classic CLRS example (5×5, directed, negative arcs, no negative cycle).
func TestFloydWarshall_CLRS(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddVertices("1", "2", "3", "4", "5")
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 3}, {From: 0, To: 2, Weight: 8}, {From: 0, To: 4, Weight: -4},
		{From: 1, To: 3, Weight: 1}, {From: 1, To: 4, Weight: 7},
		{From: 2, To: 1, Weight: 4},
		{From: 3, To: 0, Weight: 2}, {From: 3, To: 2, Weight: -5},
		{From: 4, To: 3, Weight: 6},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	require.False(t, m.HasNegativeCycle())

	exp := [][]int64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}
	for i := range exp {
		for j, want := range exp[i] {
			got, err := m.At(core.VertexID(i), core.VertexID(j))
			require.NoError(t, err)
			require.Equal(t, distance.Finite(want), got, "dist[%d,%d]", i, j)
		}
	}
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddVertices("a", "b")
	require.NoError(t, g.AddEdge(0, 1, 4))

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	d, err := m.At(1, 0)
	require.NoError(t, err)
	require.True(t, d.IsInfinite())
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithLoops())
	v := g.AddVertex("v")
	require.NoError(t, g.AddEdge(v, v, -1))

	m, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	require.True(t, m.HasNegativeCycle())
}

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	_, err := floydwarshall.FloydWarshall(nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	m, err := floydwarshall.FloydWarshall(core.NewGraph())
	require.NoError(t, err)
	require.Zero(t, m.Len())
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, floydwarshall.ErrIndexOutOfRange)
}
