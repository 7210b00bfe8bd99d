package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading.
var (
	// ErrNoVertices indicates the vertices input held no non-blank line.
	ErrNoVertices = errors.New("loader: no vertices")

	// ErrVertices wraps every failure to produce the city list.
	ErrVertices = errors.New("loader: failed to load vertices")

	// ErrDistances wraps every failure to read the road list.
	ErrDistances = errors.New("loader: failed to load distances")

	// ErrUnwritable indicates a graph that Write cannot express as text.
	ErrUnwritable = errors.New("loader: graph cannot be written")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Record is one parsed road line.
type Record struct {
	Line   int    // 1-based line number in the distances input
	From   string // first city name
	To     string // second city name
	Weight int64  // road length, not yet range-checked
}

// Skip describes an input line that did not become a road.
type Skip struct {
	Line   int    // 1-based line number
	Text   string // the raw line
	Reason string // human-readable cause
}

// String renders the skip for logs and error messages.
func (s Skip) String() string {
	return fmt.Sprintf("line %d: %s (%q)", s.Line, s.Reason, s.Text)
}

// Report summarises what a load produced.
type Report struct {
	Cities  int // vertices created
	Roads   int // undirected edges added
	Regions int // connected regions after loading

	// Skipped lists distances lines that were not turned into roads.
	Skipped []Skip

	// Duplicates lists names that appear more than once; lookups resolve
	// to the first occurrence.
	Duplicates []string

	// Unroutable lists names containing whitespace. They are loaded but
	// cannot be typed as a single token at the prompt or in a road line.
	Unroutable []string
}
