package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadVertices returns one city name per non-blank line of r, trimmed of
// surrounding whitespace. It fails with ErrNoVertices when none are found.
func ReadVertices(r io.Reader) ([]string, error) {
	scanner := newScanner(r)

	var names []string
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			// skip blank lines
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vertices: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoVertices
	}

	return names, nil
}

// ReadDistances parses "name1 name2 weight" lines from r. Blank lines are
// ignored silently; lines with fewer than three fields or a non-integer
// weight are returned as Skip entries. Only I/O failures produce an error.
func ReadDistances(r io.Reader) ([]Record, []Skip, error) {
	scanner := newScanner(r)

	var (
		records []Record
		skips   []Skip
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case len(fields) < 3:
			skips = append(skips, Skip{Line: lineNo, Text: line, Reason: "expected: city1 city2 distance"})
			continue
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			skips = append(skips, Skip{Line: lineNo, Text: line, Reason: fmt.Sprintf("distance %q is not an integer", fields[2])})
			continue
		}
		records = append(records, Record{Line: lineNo, From: fields[0], To: fields[1], Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read distances: %w", err)
	}

	return records, skips, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(bufio.ScanLines)

	return scanner
}
