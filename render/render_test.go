package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/render"
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for i, name := range []string{"Lyon", "Paris", "Nice", ""} {
		require.NoError(t, g.SetName(i, name))
	}
	g.AddUndirectedEdge(0, 1, 465)
	g.AddUndirectedEdge(1, 0, 470)
	g.AddUndirectedEdge(0, 2, 470)
	g.AddUndirectedEdge(2, 2, 1)

	return g
}

func TestPage_ContainsEveryCity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Page(&buf, network(t), []int{1, 0, 2}, "France"))

	html := buf.String()
	assert.Contains(t, html, "<title>France</title>")
	for _, name := range []string{"Lyon", "Paris", "Nice", "#3"} {
		assert.Contains(t, html, name)
	}
	assert.Contains(t, html, "#d62728")
}

func TestPage_NoRoute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Page(&buf, network(t), nil, "France"))
	assert.NotContains(t, buf.String(), "#d62728")
}

func TestPage_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Page(&buf, nil, nil, "x"), render.ErrNilGraph)
	assert.Error(t, render.Page(&buf, network(t), []int{0, 9}, "x"))
}
