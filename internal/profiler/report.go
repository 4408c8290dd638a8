package profiler

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ColumnProfile summarizes one column of the input dataset.
type ColumnProfile struct {
	Name          string  `json:"column_name"`
	DistinctCount int     `json:"distinct_count"`
	TotalCount    int     `json:"total_count"`
	MissingCount  int     `json:"missing_count"`
	PresentCount  int     `json:"present_count"`
	PctMissing    float64 `json:"pct_missing"`
	PctDistinct   float64 `json:"pct_distinct"`
}

// Report is the full profile, one entry per input column, ordered by
// pct_missing ascending then distinct_count descending.
type Report []ColumnProfile

// csvHeader is the fixed serialization header. Consumers key on these
// names, so they never change.
var csvHeader = []string{
	"column_name",
	"distinct_count",
	"present_count",
	"missing_count",
	"pct_missing",
	"pct_distinct",
}

// WriteCSV serializes the report as delimited text, one row per profiled
// column, in report order.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range r {
		rec := []string{
			p.Name,
			strconv.Itoa(p.DistinctCount),
			strconv.Itoa(p.PresentCount),
			strconv.Itoa(p.MissingCount),
			strconv.FormatFloat(p.PctMissing, 'f', 2, 64),
			strconv.FormatFloat(p.PctDistinct, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON serializes the report as an indented JSON array.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
