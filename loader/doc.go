// Package loader turns the two plain-text input files into a core.Graph.
//
// Vertices file: one city name per line. Surrounding whitespace is trimmed
// and blank lines are ignored; the i-th non-blank line becomes vertex i.
//
// Distances file: one road per line as "name1 name2 weight", fields separated
// by any run of spaces or tabs. Tokens after the third are ignored. Lines that
// do not parse, name an unknown city, or carry a weight outside
// [0, core.MaxWeight] are skipped and listed in the Report; they never abort
// the load.
//
// Load reads both files concurrently and logs every skipped line through
// package logger.
package loader
