package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/builder"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dfs"
)

// roads lists every adjacency record of g as [u, v, w] with u <= v, once per
// undirected edge, in vertex order then newest-first.
func roads(t *testing.T, g *core.Graph) [][3]int64 {
	t.Helper()
	var out [][3]int64
	for u := 0; u < g.VertexCount(); u++ {
		nbs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, e := range nbs {
			if u < e.To {
				out = append(out, [3]int64{int64(u), int64(e.To), e.Weight})
			}
		}
	}

	return out
}

func TestBuildGraph_Topologies(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"complete", builder.Complete(5), 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"random p=1", builder.RandomSparse(4, 1), 4, 6},
		{"random p=0", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestBuildGraph_BlocksAreDisjointRegions(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3), builder.Star(2))
	require.NoError(t, err)

	regions, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7}}, regions)

	name, err := g.Name(4)
	require.NoError(t, err)
	assert.Equal(t, "C4", name)
}

func TestBuildGraph_Options(t *testing.T) {
	ids := func(i int) string { return string(rune('A' + i)) }
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(ids), builder.WithWeightFn(builder.ConstantWeightFn(7))},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Names())
	assert.Equal(t, [][3]int64{{0, 1, 7}, {1, 2, 7}}, roads(t, g))
}

func TestBuildGraph_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
			builder.RandomSparse(30, 0.2),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, roads(t, a), roads(t, b))
	for _, r := range roads(t, a) {
		assert.GreaterOrEqual(t, r[2], int64(1))
		assert.LessOrEqual(t, r[2], int64(100))
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"none", nil, builder.ErrConstructFailed},
		{"zero value", []builder.Constructor{{}}, builder.ErrConstructFailed},
		{"short path", []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"short cycle", []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"empty grid", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"bad p", []builder.Constructor{builder.RandomSparse(3, 1.5)}, builder.ErrInvalidProbability},
		{"no rng", []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWeightFns(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, core.MaxWeight+1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })

	u := builder.UniformWeightFn(3, 3)
	assert.Equal(t, int64(3), u(rand.New(rand.NewSource(1))))
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 9)(nil))
}
