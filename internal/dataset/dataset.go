// Package dataset holds an in-memory columnar table: an ordered set of
// named, equal-length, nullable columns. It is the input shape every
// loader produces and the profiler consumes.
package dataset

// Dataset is an ordered collection of equal-length columns. Column order
// is insertion order and is preserved by every consumer.
type Dataset struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New validates the columns and assembles a dataset. All columns must
// have the same length and distinct names.
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, &EmptySchemaError{}
	}

	ds := &Dataset{
		cols:  cols,
		index: make(map[string]int, len(cols)),
		rows:  cols[0].Len(),
	}
	for i, c := range cols {
		if c.Len() != ds.rows {
			return nil, &ShapeMismatchError{
				Column:   c.Name(),
				Length:   c.Len(),
				Expected: ds.rows,
			}
		}
		if _, ok := ds.index[c.Name()]; ok {
			return nil, &DuplicateColumnError{Column: c.Name()}
		}
		ds.index[c.Name()] = i
	}
	return ds, nil
}

// Rows returns the shared row count N.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dataset) Cols() int { return len(d.cols) }

// Columns returns the columns in insertion order. The slice is a copy;
// the columns themselves are shared.
func (d *Dataset) Columns() []Column {
	out := make([]Column, len(d.cols))
	copy(out, d.cols)
	return out
}

// Column returns the column at position i.
func (d *Dataset) Column(i int) Column { return d.cols[i] }

// ColumnByName looks a column up by name.
func (d *Dataset) ColumnByName(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}
