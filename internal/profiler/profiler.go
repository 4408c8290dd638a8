// Package profiler computes per-column cardinality and completeness
// statistics for a dataset. The report inverts the table: each input
// column becomes one output row.
package profiler

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"tabprof/internal/dataset"
)

// ErrNoRows rejects datasets with zero rows: the percentage fields are
// undefined when total_count is zero.
var ErrNoRows = errors.New("dataset has no rows")

// Options tunes a profiling run. The zero value profiles sequentially.
type Options struct {
	// Workers caps the number of columns aggregated concurrently.
	// Values <= 1 run sequentially. Output is identical either way.
	Workers int
}

// Profile computes a Report for the dataset. It is pure: the input is
// never mutated and repeat calls yield identical reports.
func Profile(ds *dataset.Dataset) (Report, error) {
	return ProfileContext(context.Background(), ds, Options{})
}

// ProfileContext is Profile with cooperative cancellation and optional
// per-column parallelism. On cancellation no partial report is returned.
func ProfileContext(ctx context.Context, ds *dataset.Dataset, opts Options) (Report, error) {
	cols := ds.Columns()
	if len(cols) == 0 {
		return nil, &dataset.EmptySchemaError{}
	}

	// Columns are append-able after dataset.New, so re-check the shape
	// here rather than trusting construction-time validation.
	rows := cols[0].Len()
	for _, c := range cols {
		if c.Len() != rows {
			return nil, &dataset.ShapeMismatchError{
				Column:   c.Name(),
				Length:   c.Len(),
				Expected: rows,
			}
		}
	}
	if rows == 0 {
		return nil, ErrNoRows
	}

	profiles := make([]ColumnProfile, len(cols))
	if opts.Workers > 1 {
		if err := aggregateParallel(ctx, cols, profiles, opts.Workers); err != nil {
			return nil, err
		}
	} else {
		for i, c := range cols {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			profiles[i] = aggregateColumn(c)
		}
	}

	sortProfiles(profiles)
	return Report(profiles), nil
}

// aggregateColumn folds one column into its three independent counts and
// the derived fields. Missing rows never enter the distinct set.
func aggregateColumn(c dataset.Column) ColumnProfile {
	total := c.Len()
	missing := 0
	seen := make(map[any]struct{})
	for i := 0; i < total; i++ {
		if c.IsNull(i) {
			missing++
			continue
		}
		seen[c.Value(i)] = struct{}{}
	}

	p := ColumnProfile{
		Name:          c.Name(),
		DistinctCount: len(seen),
		TotalCount:    total,
		MissingCount:  missing,
		PresentCount:  total - missing,
	}
	p.PctMissing = round2(100 * float64(missing) / float64(total))
	p.PctDistinct = round2(float64(p.DistinctCount) / float64(total))
	return p
}

func aggregateParallel(ctx context.Context, cols []dataset.Column, profiles []ColumnProfile, workers int) error {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, c := range cols {
		wg.Add(1)
		go func(i int, c dataset.Column) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()
			profiles[i] = aggregateColumn(c)
		}(i, c)
	}
	wg.Wait()
	return ctx.Err()
}

// sortProfiles orders the report by completeness first (pct_missing
// ascending), then cardinality (distinct_count descending). Stable sort
// keeps original column order on full ties.
func sortProfiles(profiles []ColumnProfile) {
	sort.SliceStable(profiles, func(a, b int) bool {
		if profiles[a].PctMissing != profiles[b].PctMissing {
			return profiles[a].PctMissing < profiles[b].PctMissing
		}
		return profiles[a].DistinctCount > profiles[b].DistinctCount
	})
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
