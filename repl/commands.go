package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/cityroute/dfs"
	"github.com/katalvlaran/cityroute/logger"
	"github.com/katalvlaran/cityroute/render"
)

// command is a keyword handler. args excludes the keyword itself.
type command struct {
	arity int // number of arguments after the keyword
	run   func(s *Session, w io.Writer, args []string) (quit bool)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"list":      {arity: 0, run: (*Session).list},
		"help":      {arity: 0, run: (*Session).help},
		"exit":      {arity: 0, run: (*Session).exit},
		"neighbors": {arity: 1, run: (*Session).neighbors},
		"hops":      {arity: 2, run: (*Session).hops},
		"stats":     {arity: 0, run: (*Session).stats},
		"render":    {arity: 1, run: (*Session).draw},
	}
}

// maxLineBytes bounds one input line; longer lines are consumed and
// answered as an invalid command.
const maxLineBytes = 64 * 1024

// Run prints the welcome block and then reads one command per line from in
// until exit, end of input or cancellation of ctx. Only read errors are
// returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	io.WriteString(w, banner)
	io.WriteString(w, helpText)
	io.WriteString(w, separator)

	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		io.WriteString(w, prompt)
		// the prompt must be visible before blocking on input
		if err := w.Flush(); err != nil {
			return err
		}
		line, tooLong, err := readLine(r)
		if err != nil {
			io.WriteString(w, goodbye)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if tooLong {
			logger.Debug("input line discarded", "limit", maxLineBytes)
			s.invalid(w)
			continue
		}
		if s.Execute(w, line) {
			return nil
		}
	}
}

// readLine returns the next line of r without its terminator. A line longer
// than maxLineBytes is read to its end and reported with tooLong set.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	partial := false
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && partial {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		partial = true
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			return string(buf), tooLong, nil
		}
	}
}

// Execute runs a single input line and reports whether the session should
// end. Keywords take precedence over city names in the first token; any line
// that is neither a keyword with the right number of arguments nor exactly
// two tokens is an invalid command.
func (s *Session) Execute(w io.Writer, line string) (quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		s.invalid(w)
		return false
	}
	if cmd, ok := commands[tokens[0]]; ok {
		if len(tokens)-1 != cmd.arity {
			s.invalid(w)
			return false
		}
		return cmd.run(s, w, tokens[1:])
	}
	if len(tokens) != 2 {
		s.invalid(w)
		return false
	}
	s.route(w, tokens[0], tokens[1])

	return false
}

func (s *Session) invalid(w io.Writer) {
	io.WriteString(w, invalid)
	io.WriteString(w, helpText)
}

func (s *Session) help(w io.Writer, _ []string) bool {
	io.WriteString(w, helpText)
	return false
}

func (s *Session) exit(w io.Writer, _ []string) bool {
	io.WriteString(w, goodbye)
	return true
}

func (s *Session) list(w io.Writer, _ []string) bool {
	for _, name := range s.g.Names() {
		if name == "" {
			continue
		}
		fmt.Fprintln(w, name)
	}

	return false
}

func (s *Session) route(w io.Writer, from, to string) {
	r, err := s.Route(from, to)
	if err != nil {
		logger.Debug("route rejected", "err", err)
		s.invalid(w)
		return
	}
	WriteRoute(w, r)
}

// WriteRoute prints r the way the prompt answers a two-city query.
func WriteRoute(w io.Writer, r Route) {
	if !r.Found {
		io.WriteString(w, pathNotFound)
		return
	}
	printCities(w, r.Cities)
	fmt.Fprintf(w, "Total Distance: %d\n", r.Distance)
}

func (s *Session) hops(w io.Writer, args []string) bool {
	r, err := s.Hops(args[0], args[1])
	if err != nil {
		logger.Debug("hops rejected", "err", err)
		s.invalid(w)
		return false
	}
	if !r.Found {
		io.WriteString(w, pathNotFound)
		return false
	}
	printCities(w, r.Cities)
	fmt.Fprintf(w, "Legs: %d\n", r.Legs)

	return false
}

func printCities(w io.Writer, cities []string) {
	io.WriteString(w, pathFound)
	for _, c := range cities {
		fmt.Fprintf(w, "\t%s\n", c)
	}
}

func (s *Session) neighbors(w io.Writer, args []string) bool {
	u, ok := s.g.FindIndex(args[0])
	if !ok {
		s.invalid(w)
		return false
	}
	nbs, err := s.g.Neighbors(u)
	if err != nil {
		logger.Error("neighbors", "city", args[0], "err", err)
		return false
	}
	if len(nbs) == 0 {
		io.WriteString(w, "No Roads...\n")
		return false
	}
	for _, e := range nbs {
		name, _ := s.g.Name(e.To)
		fmt.Fprintf(w, "\t%s %d\n", name, e.Weight)
	}

	return false
}

func (s *Session) stats(w io.Writer, _ []string) bool {
	regions, err := dfs.Components(s.g)
	if err != nil {
		logger.Error("stats", "err", err)
		return false
	}
	fmt.Fprintf(w, "Cities: %d\nRoads: %d\nRegions: %d\n", s.g.VertexCount(), s.g.EdgeCount(), len(regions))

	return false
}

func (s *Session) draw(w io.Writer, args []string) bool {
	if err := s.RenderTo(args[0]); err != nil {
		logger.Error("render", "file", args[0], "err", err)
		io.WriteString(w, "Render Failed...\n")
		return false
	}
	fmt.Fprintf(w, "Map written to %s\n", args[0])

	return false
}

// RenderTo writes the network, with the last found route highlighted, to
// the HTML file at path.
func (s *Session) RenderTo(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render.Page(f, s.g, s.lastRoute, s.renderTitle)
}
