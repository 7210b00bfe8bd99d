// Command cityroute loads a city list and a road list and answers
// shortest-route questions, interactively or once from flags.
//
//	cityroute [flags] <vertices> <distances>
//
// Flags:
//
//	-config file     YAML configuration (also CITYROUTE_CONFIG)
//	-log-level lvl   debug, info, warn, error or fatal
//	-from city       one-shot query start; requires -to
//	-to city         one-shot query destination; requires -from
//	-json            print the one-shot answer as JSON
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/loader"
	"github.com/katalvlaran/cityroute/logger"
	"github.com/katalvlaran/cityroute/logger/console"
	"github.com/katalvlaran/cityroute/repl"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitQuery   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	prog := args[0]
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML configuration file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error, fatal")
	from := fs.String("from", "", "one-shot query start city")
	to := fs.String("to", "", "one-shot query destination city")
	asJSON := fs.Bool("json", false, "print the one-shot answer as JSON")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s <vertices> <distances>\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		return exitFailure
	}

	config.LoadEnv()
	cfg, err := config.Load(config.Params{File: *configFile, LogLevel: *logLevel, Args: fs.Args()})
	if err != nil {
		if !errors.Is(err, config.ErrArgs) && !errors.Is(err, config.ErrNoPaths) {
			fmt.Fprintln(stderr, err)
		}
		if errors.Is(err, config.ErrArgs) || cfg.VerticesPath == "" || cfg.DistancesPath == "" {
			fmt.Fprintf(stderr, "Usage: %s <vertices> <distances>\n", prog)
		}
		return exitFailure
	}

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Level:  cfg.LogLevel,
		Output: stderr,
	}))
	defer logger.Init()

	g, _, err := loader.Load(ctx, cfg.VerticesPath, cfg.DistancesPath)
	switch {
	case errors.Is(err, loader.ErrVertices):
		logger.Debug("load failed", "err", err)
		fmt.Fprintf(stderr, "Failed to load vertices from %s\n", cfg.VerticesPath)
		return exitFailure
	case errors.Is(err, loader.ErrDistances):
		logger.Debug("load failed", "err", err)
		fmt.Fprintf(stderr, "Failed to load distances from %s\n", cfg.DistancesPath)
		return exitFailure
	case err != nil:
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	session, err := repl.NewSession(g,
		repl.WithRenderTitle(cfg.RenderTitle),
		repl.WithSearchOptions(searchOptions(cfg)...))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if *from != "" || *to != "" {
		return oneShot(session, *from, *to, *asJSON, stdout, stderr)
	}
	if err = session.Run(ctx, stdin, stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session ended", "err", err)
		return exitFailure
	}

	return exitOK
}

// searchOptions maps the road limits of cfg onto shortest-path options.
func searchOptions(cfg config.Config) []dijkstra.Option {
	var opts []dijkstra.Option
	if cfg.ClosedRoadWeight > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(cfg.ClosedRoadWeight))
	}
	if cfg.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(cfg.MaxDistance))
	}

	return opts
}

// oneShot answers a single query and exits; an unknown city is exitQuery.
func oneShot(s *repl.Session, from, to string, asJSON bool, stdout, stderr io.Writer) int {
	if from == "" || to == "" {
		fmt.Fprintln(stderr, "both -from and -to are required")
		return exitFailure
	}
	r, err := s.Route(from, to)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitQuery
	}
	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(r); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
		return exitOK
	}
	repl.WriteRoute(stdout, r)

	return exitOK
}
