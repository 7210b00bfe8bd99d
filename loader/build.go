package loader

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dfs"
)

// Build creates a graph with one vertex per name, in order, and adds every
// record whose cities resolve and whose weight lies in [0, core.MaxWeight].
// Records that cannot be added are appended to the report's Skipped list.
func Build(names []string, records []Record) (*core.Graph, Report, error) {
	var rep Report
	if len(names) == 0 {
		return nil, rep, ErrNoVertices
	}

	g, err := core.NewGraph(len(names))
	if err != nil {
		return nil, rep, err
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if err = g.SetName(i, name); err != nil {
			return nil, rep, err
		}
		if seen[name] {
			rep.Duplicates = append(rep.Duplicates, name)
		}
		seen[name] = true
		if strings.ContainsAny(name, " \t") {
			rep.Unroutable = append(rep.Unroutable, name)
		}
	}
	rep.Cities = len(names)

	for _, rec := range records {
		if reason := addRoad(g, rec); reason != "" {
			rep.Skipped = append(rep.Skipped, Skip{
				Line:   rec.Line,
				Text:   fmt.Sprintf("%s %s %d", rec.From, rec.To, rec.Weight),
				Reason: reason,
			})
			continue
		}
		rep.Roads++
	}

	regions, err := dfs.Components(g)
	if err != nil {
		return nil, rep, err
	}
	rep.Regions = len(regions)

	return g, rep, nil
}

// addRoad inserts rec and returns "" on success or the reason it was refused.
func addRoad(g *core.Graph, rec Record) string {
	u, ok := g.FindIndex(rec.From)
	if !ok {
		return fmt.Sprintf("unknown city %q", rec.From)
	}
	v, ok := g.FindIndex(rec.To)
	if !ok {
		return fmt.Sprintf("unknown city %q", rec.To)
	}
	if rec.Weight < 0 || rec.Weight > core.MaxWeight {
		return fmt.Sprintf("distance %d not in [0,%d]", rec.Weight, core.MaxWeight)
	}
	if !g.AddUndirectedEdge(u, v, rec.Weight) {
		return "rejected by graph"
	}

	return ""
}
