// Package cityroute answers "how do I get from here to there?" over a small
// road network of named cities.
//
// What is cityroute?
//
//	A command-line tool and a set of packages that together:
//		• load city names and road lengths from two plain-text files
//		• keep them in a fixed-size, index-addressed undirected graph
//		• find the shortest route with an O(V² + E) Dijkstra
//		• find the route with the fewest legs (BFS)
//		• split the network into connected regions (DFS)
//		• draw the network and a route as an HTML page
//
// Packages:
//
//	core          Graph: names, adjacency, thread-safe insertion and lookup
//	dijkstra      ShortestPath and Distances with a deterministic tie-break
//	bfs           fewest-legs search
//	dfs           depth-first traversal, Components, Reachable
//	builder       synthetic road networks for tests and benchmarks
//	loader        vertices/distances parsing, skip report, concurrent Load
//	repl          the interactive prompt and its fixed text format
//	render        go-echarts HTML page
//	config        defaults, YAML file, .env/environment, arguments
//	logger        logging facade with a console backend
//	cmd/cityroute the binary
//
// Quick ASCII example:
//
//	A──1──B──2──C──1──D
//	└─────4─────┘
//
// The shortest route from A to D is A, B, C, D with a total distance of 4.
//
//	go install github.com/katalvlaran/cityroute/cmd/cityroute@latest
package cityroute
