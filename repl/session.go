// Package repl is the interactive front end: it resolves city names typed by
// the user, asks the dijkstra and bfs packages for routes, and prints the
// answers in a fixed text format.
package repl

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/logger"
)

var (
	// ErrNilGraph is returned by NewSession when g is nil.
	ErrNilGraph = errors.New("repl: graph is nil")

	// ErrUnknownCity is returned when a name does not resolve to a vertex.
	ErrUnknownCity = errors.New("repl: unknown city")
)

// Route is a resolved answer to a from/to query.
type Route struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Found    bool     `json:"found"`
	Cities   []string `json:"cities,omitempty"`
	Path     []int    `json:"path,omitempty"`
	Distance int64    `json:"distance"`
	Legs     int      `json:"legs"`
}

// Option configures a Session.
type Option func(*Session)

// WithRenderTitle sets the page title used by the render command.
func WithRenderTitle(title string) Option {
	return func(s *Session) {
		if title != "" {
			s.renderTitle = title
		}
	}
}

// WithSearchOptions passes options to every shortest-path query.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(s *Session) {
		s.searchOpts = append(s.searchOpts, opts...)
	}
}

// Session answers queries against one loaded graph. A Session is not safe
// for concurrent use; the graph it wraps is.
type Session struct {
	g           *core.Graph
	renderTitle string
	searchOpts  []dijkstra.Option

	// lastRoute is the most recent found route, highlighted by render.
	lastRoute []int
}

// NewSession wraps g.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Session{g: g, renderTitle: "cityroute"}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// resolve maps both names to indices, failing with ErrUnknownCity.
func (s *Session) resolve(from, to string) (int, int, error) {
	src, ok := s.g.FindIndex(from)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}
	dst, ok := s.g.FindIndex(to)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCity, to)
	}

	return src, dst, nil
}

// Route finds the shortest route between two named cities. An unreachable
// destination is a Route with Found == false, not an error.
func (s *Session) Route(from, to string) (Route, error) {
	src, dst, err := s.resolve(from, to)
	if err != nil {
		return Route{}, err
	}
	res, err := dijkstra.ShortestPath(s.g, src, dst, s.searchOpts...)
	if err != nil {
		return Route{}, err
	}
	logger.Debug("shortest path", "from", from, "to", to, "found", res.Found, "distance", res.Distance)

	r := Route{From: from, To: to, Found: res.Found}
	if res.Found {
		s.fill(&r, res.Path)
		r.Distance = res.Distance
	}

	return r, nil
}

// Hops finds the route with the fewest legs between two named cities.
// Distance is the summed length of the chosen roads.
func (s *Session) Hops(from, to string) (Route, error) {
	src, dst, err := s.resolve(from, to)
	if err != nil {
		return Route{}, err
	}
	res, err := bfs.BFS(s.g, src)
	if err != nil {
		return Route{}, err
	}
	r := Route{From: from, To: to}
	path, err := res.PathTo(dst)
	if errors.Is(err, bfs.ErrNoPath) {
		return r, nil
	}
	if err != nil {
		return Route{}, err
	}
	logger.Debug("fewest legs", "from", from, "to", to, "legs", len(path)-1)

	r.Found = true
	s.fill(&r, path)
	r.Distance, err = s.legLength(path)
	if err != nil {
		return Route{}, err
	}

	return r, nil
}

// fill records path on r and remembers it for render.
func (s *Session) fill(r *Route, path []int) {
	r.Path = path
	r.Legs = len(path) - 1
	r.Cities = make([]string, len(path))
	for i, v := range path {
		r.Cities[i], _ = s.g.Name(v)
	}
	s.lastRoute = path
}

// legLength sums the lightest road between each consecutive pair of path.
func (s *Session) legLength(path []int) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		best := dijkstra.Infinity
		err := s.g.EachNeighbor(path[i-1], func(e core.Edge) bool {
			if e.To == path[i] && e.Weight < best {
				best = e.Weight
			}
			return true
		})
		if err != nil {
			return 0, err
		}
		total += best
	}

	return total, nil
}
