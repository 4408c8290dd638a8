// Package loader builds datasets from external tabular sources. Type
// inference lives here, not in the profiler: a loader hands over typed,
// equal-length columns with explicit missing markers.
package loader

import (
	"strconv"
	"strings"
	"time"

	"tabprof/internal/dataset"
)

// Loader produces a dataset from some tabular source.
type Loader interface {
	Load() (*dataset.Dataset, error)
}

// DefaultNullLiterals are the cell spellings treated as missing when a
// source has no native null representation.
var DefaultNullLiterals = []string{"", "NA", "N/A", "NULL"}

// cell is one raw value before typing.
type cell struct {
	text string
	null bool
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
}

func parseDate(value string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inferKind unifies the candidate types of all present cells in one
// column. Integers widen to float when mixed; anything unparseable
// falls back to string. An all-missing column types as string.
func inferKind(col []cell) dataset.Kind {
	allInt, allFloat, allBool, allTime := true, true, true, true
	present := 0
	for _, c := range col {
		if c.null {
			continue
		}
		present++
		if allInt {
			if _, err := strconv.ParseInt(c.text, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(c.text, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if _, err := strconv.ParseBool(c.text); err != nil {
				allBool = false
			}
		}
		if allTime {
			if _, ok := parseDate(c.text); !ok {
				allTime = false
			}
		}
		if !allInt && !allFloat && !allBool && !allTime {
			return dataset.KindString
		}
	}
	if present == 0 {
		return dataset.KindString
	}
	switch {
	case allInt:
		return dataset.KindInt
	case allFloat:
		return dataset.KindFloat
	case allBool:
		return dataset.KindBool
	case allTime:
		return dataset.KindTime
	default:
		return dataset.KindString
	}
}

// buildDataset turns raw rows into typed columns. Short rows are padded
// with missing cells so every column reaches the shared length.
func buildDataset(headers []string, rows [][]cell) (*dataset.Dataset, error) {
	ncols := len(headers)
	raw := make([][]cell, ncols)
	for i := range raw {
		raw[i] = make([]cell, len(rows))
	}
	for r, row := range rows {
		for i := 0; i < ncols; i++ {
			if i < len(row) {
				raw[i][r] = row[i]
			} else {
				raw[i][r] = cell{null: true}
			}
		}
	}

	cols := make([]dataset.Column, ncols)
	for i, name := range headers {
		cols[i] = buildColumn(name, raw[i])
	}
	return dataset.New(cols...)
}

func buildColumn(name string, raw []cell) dataset.Column {
	switch inferKind(raw) {
	case dataset.KindInt:
		col := dataset.NewIntColumn(name)
		for _, c := range raw {
			if c.null {
				col.AppendNull()
				continue
			}
			v, _ := strconv.ParseInt(c.text, 10, 64)
			col.Append(v)
		}
		return col
	case dataset.KindFloat:
		col := dataset.NewFloatColumn(name)
		for _, c := range raw {
			if c.null {
				col.AppendNull()
				continue
			}
			v, _ := strconv.ParseFloat(c.text, 64)
			col.Append(v)
		}
		return col
	case dataset.KindBool:
		col := dataset.NewBoolColumn(name)
		for _, c := range raw {
			if c.null {
				col.AppendNull()
				continue
			}
			v, _ := strconv.ParseBool(c.text)
			col.Append(v)
		}
		return col
	case dataset.KindTime:
		col := dataset.NewTimeColumn(name)
		for _, c := range raw {
			if c.null {
				col.AppendNull()
				continue
			}
			v, _ := parseDate(c.text)
			col.Append(v)
		}
		return col
	default:
		col := dataset.NewStringColumn(name)
		for _, c := range raw {
			if c.null {
				col.AppendNull()
				continue
			}
			col.Append(c.text)
		}
		return col
	}
}

// nullSet builds a case-insensitive membership test over null literals.
func nullSet(literals []string) map[string]struct{} {
	if literals == nil {
		literals = DefaultNullLiterals
	}
	set := make(map[string]struct{}, len(literals))
	for _, l := range literals {
		set[strings.ToUpper(l)] = struct{}{}
	}
	return set
}

func isNullLiteral(set map[string]struct{}, value string) bool {
	_, ok := set[strings.ToUpper(value)]
	return ok
}
