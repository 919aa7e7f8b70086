package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnknownColumn is returned when a column name is not part of a frame.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrLengthMismatch is returned when columns have different lengths.
	ErrLengthMismatch = errors.New("column length mismatch")
	// ErrNotNumeric is returned when a numeric view of a string column is requested.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Frame is an immutable table of named columns.
type Frame struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New assembles a frame from columns. All columns must have the same length
// and distinct names.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{cols: make([]Column, 0, len(cols)), index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, ok := f.index[c.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.name)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrLengthMismatch, c.name, c.Len(), f.rows)
		}
		f.index[c.name] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// MustNew is New that panics on error. Intended for tests and literals.
func MustNew(cols ...Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.name
	}
	return out
}

// Has reports whether the frame contains every named column.
func (f *Frame) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := f.index[n]; !ok {
			return false
		}
	}
	return true
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	return f.cols[i], nil
}

// Columns returns the columns in order. The slice is a copy; column values
// are shared.
func (f *Frame) Columns() []Column {
	return append([]Column(nil), f.cols...)
}

// NamesOfKind lists the columns having the given kind.
func (f *Frame) NamesOfKind(k Kind) []string {
	var out []string
	for _, c := range f.cols {
		if c.kind == k {
			out = append(out, c.name)
		}
	}
	return out
}

// Select returns a frame restricted to the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		c, err := f.Column(n)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return New(cols...)
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.Clone()
	}
	return MustNew(cols...)
}

// Dense exports the named numeric columns as a rows x len(names) matrix. With
// no names every column is exported.
func (f *Frame) Dense(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		names = f.Names()
	}
	if f.rows == 0 || len(names) == 0 {
		return nil, fmt.Errorf("dense export of empty frame")
	}
	m := mat.NewDense(f.rows, len(names), nil)
	for j, n := range names {
		c, err := f.Column(n)
		if err != nil {
			return nil, err
		}
		if !c.kind.Numeric() {
			return nil, fmt.Errorf("%w: %s", ErrNotNumeric, n)
		}
		for i := 0; i < f.rows; i++ {
			v, _ := c.Float(i)
			m.Set(i, j, v)
		}
	}
	return m, nil
}
