// SPDX-License-Identifier: MIT

// File: builder_test.go
// Package builder_test checks topology, weights, determinism and validation
// of every constructor.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpaths/builder"
	"github.com/katalvlaran/shortpaths/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					w, err := g.Weight(core.VertexID(i), core.VertexID(i+1))
					require.NoError(t, err)
					require.Equal(t, int64(1), w)
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(4, 0), "ring must close")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, g *core.Graph) {
				for _, v := range g.Vertices() {
					require.False(t, g.HasEdge(v, v))
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 30,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuildGraph_ComposesDisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(2, 3))
	require.True(t, g.HasEdge(4, 2))
	require.False(t, g.HasEdge(1, 2))
}

func TestBuildGraph_Labels(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithLabels(func(i int) string { return fmt.Sprintf("v%d", i) })},
		builder.Path(3))
	require.NoError(t, err)
	label, err := g.Label(2)
	require.NoError(t, err)
	require.Equal(t, "v2", label)

	g, err = builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	label, err = g.Label(1)
	require.NoError(t, err)
	require.Equal(t, "1", label)
}

func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeights(-3, 10)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}

	require.Equal(t, build(42), build(42))
	require.NotEqual(t, build(42), build(43))
}

func TestWithWeights_Range(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeights(-5, 5)},
		builder.Complete(8))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(-5))
		require.LessOrEqual(t, e.Weight, int64(5))
	}

	// Equal bounds need no RNG.
	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeights(7, 7)},
		builder.Cycle(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.Equal(t, int64(7), e.Weight)
	}
}

func TestRandomSparse_SelfLoopsFollowGraphMode(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	require.Equal(t, 9, g.EdgeCount())
	require.True(t, g.HasEdge(1, 1))
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path too small", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle too small", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete too small", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse too small", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse p<0", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"drawn weights no rng", []builder.BuilderOption{builder.WithWeights(0, 3)}, builder.Path(3), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, builder.ErrBadWeightRange, func() { builder.WithWeights(2, 1) })
	require.PanicsWithValue(t, builder.ErrBadWeightRange, func() { builder.WithWeights(-1<<63, 0) })
	require.Panics(t, func() { builder.WithLabels(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func BenchmarkRandomSparse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(int64(i)), builder.WithWeights(0, 100)},
			builder.RandomSparse(200, 0.05))
		if err != nil {
			b.Fatal(err)
		}
	}
}
