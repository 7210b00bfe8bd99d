// Package render draws a road network as a self-contained HTML page using
// go-echarts' force-directed graph chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/cityroute/core"
)

// ErrNilGraph is returned when Page is given a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

const (
	routeColor = "#d62728"
	plainColor = "#7f7f7f"
)

// pair is an undirected city pair with u <= v.
type pair struct{ u, v int }

func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}
	return pair{u, v}
}

// Page writes an HTML document showing every city of g and one link per
// connected pair, labelled with the lightest road between them. Cities and
// roads along route (a vertex path such as dijkstra.Result.Path) are drawn in
// the highlight colour. A nil or empty route highlights nothing.
func Page(w io.Writer, g *core.Graph, route []int, title string) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	onRoute := make(map[int]bool, len(route))
	routeLegs := make(map[pair]bool, len(route))
	for i, v := range route {
		if v < 0 || v >= n {
			return fmt.Errorf("render: route vertex %d not in [0,%d)", v, n)
		}
		onRoute[v] = true
		if i > 0 {
			routeLegs[newPair(route[i-1], v)] = true
		}
	}

	labels := nodeLabels(g.Names())
	nodes := make([]opts.GraphNode, 0, n)
	for v := 0; v < n; v++ {
		color := plainColor
		if onRoute[v] {
			color = routeColor
		}
		nodes = append(nodes, opts.GraphNode{
			Name:      labels[v],
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	lightest := make(map[pair]int64)
	for u := 0; u < n; u++ {
		err := g.EachNeighbor(u, func(e core.Edge) bool {
			if e.To == u {
				return true
			}
			p := newPair(u, e.To)
			if cur, ok := lightest[p]; !ok || e.Weight < cur {
				lightest[p] = e.Weight
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	pairs := make([]pair, 0, len(lightest))
	for p := range lightest {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].u != pairs[j].u {
			return pairs[i].u < pairs[j].u
		}
		return pairs[i].v < pairs[j].v
	})

	links := make([]opts.GraphLink, 0, len(pairs))
	for _, p := range pairs {
		style := &opts.LineStyle{Color: plainColor, Width: 1}
		if routeLegs[p] {
			style = &opts.LineStyle{Color: routeColor, Width: 4}
		}
		links = append(links, opts.GraphLink{
			Source:    labels[p.u],
			Target:    labels[p.v],
			Value:     float32(lightest[p]),
			LineStyle: style,
		})
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(graphBase(title, nodes, links))

	return page.Render(w)
}

// nodeLabels makes every vertex label unique: unnamed vertices become
// "#<index>" and repeated names get their index appended.
func nodeLabels(names []string) []string {
	labels := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		label := name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		} else if used[label] {
			label = fmt.Sprintf("%s (#%d)", name, i)
		}
		used[label] = true
		labels[i] = label
	}

	return labels
}

func graphBase(title string, nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"roads",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: 400},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return graph
}
