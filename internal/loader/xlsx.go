package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tabprof/internal/dataset"
)

// XLSXOptions controls loading from a spreadsheet.
type XLSXOptions struct {
	Sheet        string // default: first sheet
	NullLiterals []string
	TrimSpace    bool
}

// XLSXLoader reads one worksheet with a header row.
type XLSXLoader struct {
	Path    string
	Options XLSXOptions
}

func NewXLSXLoader(path string, opts XLSXOptions) *XLSXLoader {
	return &XLSXLoader{Path: path, Options: opts}
}

func (l *XLSXLoader) Load() (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.Options.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", l.Path)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	nulls := nullSet(l.Options.NullLiterals)
	rows := make([][]cell, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]cell, len(record))
		for i, v := range record {
			if l.Options.TrimSpace {
				v = strings.TrimSpace(v)
			}
			if isNullLiteral(nulls, v) {
				row[i] = cell{null: true}
			} else {
				row[i] = cell{text: v}
			}
		}
		rows = append(rows, row)
	}

	return buildDataset(headers, rows)
}
