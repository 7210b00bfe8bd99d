package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
)

// ExampleBFS contrasts fewest legs with shortest distance: the direct road
// A—D is long, but it is a single leg.
func ExampleBFS() {
	g, _ := core.NewGraph(4)
	for i, name := range []string{"A", "B", "C", "D"} {
		_ = g.SetName(i, name)
	}
	g.AddUndirectedEdge(0, 1, 1)
	g.AddUndirectedEdge(1, 2, 1)
	g.AddUndirectedEdge(2, 3, 1)
	g.AddUndirectedEdge(0, 3, 50)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)
	for _, v := range path {
		name, _ := g.Name(v)
		fmt.Print(name, " ")
	}
	fmt.Println("legs:", res.Depth[3])
	// Output: A D legs: 1
}
