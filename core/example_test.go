package core_test

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// ExampleGraph demonstrates building a small road network and querying it.
func ExampleGraph() {
	// 1) Three cities, named in file order.
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, name := range []string{"Lyon", "Paris", "Nice"} {
		_ = g.SetName(i, name)
	}

	// 2) Roads; the last one is ignored because index 7 does not exist.
	g.AddUndirectedEdge(0, 1, 465)
	g.AddUndirectedEdge(0, 2, 470)
	fmt.Println("added bad road?", g.AddUndirectedEdge(0, 7, 1))

	// 3) Resolve a name and list its roads, newest first.
	lyon, _ := g.FindIndex("Lyon")
	nbs, _ := g.Neighbors(lyon)
	for _, e := range nbs {
		name, _ := g.Name(e.To)
		fmt.Printf("Lyon - %s: %d\n", name, e.Weight)
	}

	_, ok := g.FindIndex("Rome")
	fmt.Println("Rome known?", ok)

	// Output:
	// added bad road? false
	// Lyon - Nice: 470
	// Lyon - Paris: 465
	// Rome known? false
}
