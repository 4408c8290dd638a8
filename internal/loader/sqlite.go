package loader

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"tabprof/internal/dataset"
)

// SQLiteLoader reads one table from a SQLite database file. SQL NULL
// maps to the dataset's missing marker. The database is opened
// read-only; this is a loader, not a storage layer.
type SQLiteLoader struct {
	Path  string
	Table string
}

func NewSQLiteLoader(path, table string) *SQLiteLoader {
	return &SQLiteLoader{Path: path, Table: table}
}

func (l *SQLiteLoader) Load() (*dataset.Dataset, error) {
	if l.Table == "" {
		return nil, fmt.Errorf("no table specified for %s", l.Path)
	}

	db, err := sql.Open("sqlite", "file:"+l.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q", l.Table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q: %w", l.Table, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var raw [][]cell
	scan := make([]any, len(headers))
	for i := range scan {
		scan[i] = new(any)
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make([]cell, len(headers))
		for i := range scan {
			row[i] = sqlCell(*scan[i].(*any))
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", l.Table, err)
	}

	return buildDataset(headers, raw)
}

// sqlCell renders a scanned SQL value back to text for the shared
// inference pipeline, so a sqlite table and its CSV export type the
// same way.
func sqlCell(v any) cell {
	switch t := v.(type) {
	case nil:
		return cell{null: true}
	case []byte:
		return cell{text: string(t)}
	case string:
		return cell{text: t}
	case int64:
		return cell{text: fmt.Sprintf("%d", t)}
	case float64:
		return cell{text: fmt.Sprintf("%g", t)}
	case bool:
		return cell{text: fmt.Sprintf("%t", t)}
	case time.Time:
		return cell{text: t.Format(time.RFC3339)}
	default:
		return cell{text: fmt.Sprintf("%v", t)}
	}
}
