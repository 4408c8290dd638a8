// Package render turns a profiling report into human-readable output.
// Renderers are read-only over the report.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"tabprof/internal/profiler"
)

// Text writes the report as an aligned table followed by triage notes
// for columns that usually indicate upstream problems: all-missing
// columns and constant columns.
func Text(w io.Writer, source string, rep profiler.Report) error {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("Source: %s\n", source))
	if len(rep) > 0 {
		out.WriteString(fmt.Sprintf("Rows: %s | Columns: %d\n\n",
			humanize.Comma(int64(rep[0].TotalCount)), len(rep)))
	}

	nameWidth := len("Column")
	for _, p := range rep {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	out.WriteString(fmt.Sprintf("%-*s %12s %12s %12s %12s %12s\n",
		nameWidth, "Column", "Distinct", "Present", "Missing", "Missing %", "Distinct %"))
	out.WriteString(strings.Repeat("-", nameWidth+5*13) + "\n")

	for _, p := range rep {
		out.WriteString(fmt.Sprintf("%-*s %12s %12s %12s %11.2f%% %12.2f\n",
			nameWidth, p.Name,
			humanize.Comma(int64(p.DistinctCount)),
			humanize.Comma(int64(p.PresentCount)),
			humanize.Comma(int64(p.MissingCount)),
			p.PctMissing, p.PctDistinct))
	}

	var notes []string
	for _, p := range rep {
		switch {
		case p.MissingCount == p.TotalCount:
			notes = append(notes, fmt.Sprintf("column %q is entirely missing", p.Name))
		case p.DistinctCount == 1 && p.MissingCount == 0:
			notes = append(notes, fmt.Sprintf("column %q holds a single constant value", p.Name))
		}
	}
	if len(notes) > 0 {
		out.WriteString("\nTriage:\n")
		for _, n := range notes {
			out.WriteString("  - " + n + "\n")
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}
