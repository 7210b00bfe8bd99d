package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cityroute/core"
)

// Write emits g in the two input formats: one name per line to vertices,
// and one "name1 name2 weight" line per undirected edge to distances.
// Loading the output again yields the same names and the same multiset of
// roads; neighbour order may differ.
//
// Unnamed vertices, names containing whitespace and repeated names cannot be
// represented; Write fails with ErrUnwritable when it meets one.
func Write(g *core.Graph, vertices, distances io.Writer) error {
	if g == nil {
		return core.ErrNilGraph
	}
	names := g.Names()
	written := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			return fmt.Errorf("%w: vertex %d %q", ErrUnwritable, i, name)
		}
		// a reload would attach every road of i to the first occurrence
		if first, ok := written[name]; ok {
			return fmt.Errorf("%w: vertex %d repeats name %q of vertex %d", ErrUnwritable, i, name, first)
		}
		written[name] = i
	}

	vw := bufio.NewWriter(vertices)
	for _, name := range names {
		fmt.Fprintln(vw, name)
	}
	if err := vw.Flush(); err != nil {
		return err
	}

	dw := bufio.NewWriter(distances)
	for u := range names {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		// oldest first; each road is written from its smaller endpoint and
		// a self loop, stored twice on u, is written once
		loopSeen := false
		for i := len(nbs) - 1; i >= 0; i-- {
			e := nbs[i]
			if e.To < u {
				continue
			}
			if e.To == u {
				loopSeen = !loopSeen
				if !loopSeen {
					continue
				}
			}
			fmt.Fprintf(dw, "%s %s %d\n", names[u], names[e.To], e.Weight)
		}
	}

	return dw.Flush()
}
