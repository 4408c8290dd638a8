package dataset

import "time"

// Kind enumerates the logical types a column can hold.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Column is a named, homogeneously typed sequence of values with an
// explicit null mask. A missing value is distinct from any valid value,
// including zero and the empty string.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	// Value returns the value at i, or nil when the row is missing.
	Value(i int) any
}

type BoolColumn struct {
	name  string
	data  []bool
	nulls []bool
}

func NewBoolColumn(name string) *BoolColumn {
	return &BoolColumn{name: name}
}

func (c *BoolColumn) Name() string      { return c.name }
func (c *BoolColumn) Kind() Kind        { return KindBool }
func (c *BoolColumn) Len() int          { return len(c.data) }
func (c *BoolColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *BoolColumn) Value(i int) any {
	if c.nulls[i] {
		return nil
	}
	return c.data[i]
}
func (c *BoolColumn) Append(v bool) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *BoolColumn) AppendNull() {
	c.data = append(c.data, false)
	c.nulls = append(c.nulls, true)
}

type IntColumn struct {
	name  string
	data  []int64
	nulls []bool
}

func NewIntColumn(name string) *IntColumn {
	return &IntColumn{name: name}
}

func (c *IntColumn) Name() string      { return c.name }
func (c *IntColumn) Kind() Kind        { return KindInt }
func (c *IntColumn) Len() int          { return len(c.data) }
func (c *IntColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *IntColumn) Value(i int) any {
	if c.nulls[i] {
		return nil
	}
	return c.data[i]
}
func (c *IntColumn) Append(v int64) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *IntColumn) AppendNull() {
	c.data = append(c.data, 0)
	c.nulls = append(c.nulls, true)
}

type FloatColumn struct {
	name  string
	data  []float64
	nulls []bool
}

func NewFloatColumn(name string) *FloatColumn {
	return &FloatColumn{name: name}
}

func (c *FloatColumn) Name() string      { return c.name }
func (c *FloatColumn) Kind() Kind        { return KindFloat }
func (c *FloatColumn) Len() int          { return len(c.data) }
func (c *FloatColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *FloatColumn) Value(i int) any {
	if c.nulls[i] {
		return nil
	}
	return c.data[i]
}
func (c *FloatColumn) Append(v float64) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *FloatColumn) AppendNull() {
	c.data = append(c.data, 0)
	c.nulls = append(c.nulls, true)
}

type StringColumn struct {
	name  string
	data  []string
	nulls []bool
}

func NewStringColumn(name string) *StringColumn {
	return &StringColumn{name: name}
}

func (c *StringColumn) Name() string      { return c.name }
func (c *StringColumn) Kind() Kind        { return KindString }
func (c *StringColumn) Len() int          { return len(c.data) }
func (c *StringColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *StringColumn) Value(i int) any {
	if c.nulls[i] {
		return nil
	}
	return c.data[i]
}
func (c *StringColumn) Append(v string) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *StringColumn) AppendNull() {
	c.data = append(c.data, "")
	c.nulls = append(c.nulls, true)
}

type TimeColumn struct {
	name  string
	data  []time.Time
	nulls []bool
}

func NewTimeColumn(name string) *TimeColumn {
	return &TimeColumn{name: name}
}

func (c *TimeColumn) Name() string      { return c.name }
func (c *TimeColumn) Kind() Kind        { return KindTime }
func (c *TimeColumn) Len() int          { return len(c.data) }
func (c *TimeColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *TimeColumn) Value(i int) any {
	if c.nulls[i] {
		return nil
	}
	return c.data[i]
}
func (c *TimeColumn) Append(v time.Time) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}
func (c *TimeColumn) AppendNull() {
	c.data = append(c.data, time.Time{})
	c.nulls = append(c.nulls, true)
}
