package loader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/logger"
)

// Load reads the vertices and distances files concurrently and builds the
// graph. Failures are wrapped in ErrVertices or ErrDistances so callers can
// tell which input was at fault.
func Load(ctx context.Context, verticesPath, distancesPath string) (*core.Graph, Report, error) {
	var (
		names   []string
		records []Record
		skips   []Skip

		vErr, dErr error
	)

	// Both reads run to completion; a vertices failure takes precedence.
	var eg errgroup.Group
	eg.Go(func() error {
		vErr = withFile(ctx, verticesPath, func(f *os.File) (err error) {
			names, err = ReadVertices(f)
			return err
		})
		if vErr != nil {
			vErr = fmt.Errorf("%w from %s: %w", ErrVertices, verticesPath, vErr)
		}
		return vErr
	})
	eg.Go(func() error {
		dErr = withFile(ctx, distancesPath, func(f *os.File) (err error) {
			records, skips, err = ReadDistances(f)
			return err
		})
		if dErr != nil {
			dErr = fmt.Errorf("%w from %s: %w", ErrDistances, distancesPath, dErr)
		}
		return dErr
	})
	if err := eg.Wait(); err != nil {
		if vErr != nil {
			return nil, Report{}, vErr
		}
		return nil, Report{}, err
	}

	g, rep, err := Build(names, records)
	if err != nil {
		return nil, rep, fmt.Errorf("%w from %s: %w", ErrVertices, verticesPath, err)
	}
	rep.Skipped = append(skips, rep.Skipped...)
	sort.SliceStable(rep.Skipped, func(i, j int) bool { return rep.Skipped[i].Line < rep.Skipped[j].Line })
	logReport(rep)

	return g, rep, nil
}

// withFile opens path, unless ctx is already done, and hands it to fn.
func withFile(ctx context.Context, path string, fn func(f *os.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}

func logReport(rep Report) {
	for _, s := range rep.Skipped {
		logger.Warn("skipped road", "line", s.Line, "reason", s.Reason)
	}
	for _, name := range rep.Duplicates {
		logger.Warn("duplicate city, first occurrence wins", "name", name)
	}
	for _, name := range rep.Unroutable {
		logger.Warn("city name contains whitespace and cannot be queried", "name", name)
	}
	logger.Info("graph loaded",
		"cities", rep.Cities,
		"roads", rep.Roads,
		"regions", rep.Regions,
		"skipped", len(rep.Skipped))
	if rep.Regions > 1 {
		logger.Debug("network is disconnected; some pairs have no path", "regions", rep.Regions)
	}
}
