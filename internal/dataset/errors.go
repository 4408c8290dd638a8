package dataset

import "fmt"

// ShapeMismatchError reports columns of unequal length. A dataset is only
// well formed when every column spans the same number of rows.
type ShapeMismatchError struct {
	Column   string
	Length   int
	Expected int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("column %q has %d rows, expected %d", e.Column, e.Length, e.Expected)
}

// EmptySchemaError reports a dataset with zero columns.
type EmptySchemaError struct{}

func (e *EmptySchemaError) Error() string {
	return "dataset has no columns"
}

// DuplicateColumnError reports two columns sharing a name.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Column)
}
