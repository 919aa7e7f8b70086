package dataset

import (
	"fmt"
	"strconv"
)

// Kind is the element type of a column.
type Kind int

const (
	Float64 Kind = iota
	Float32
	Int64
	String
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Numeric reports whether values of this kind convert to float64.
func (k Kind) Numeric() bool { return k != String }

// Column is a named, typed vector of values. Exactly one backing slice is set,
// matching Kind.
type Column struct {
	name string
	kind Kind
	f64  []float64
	f32  []float32
	i64  []int64
	str  []string
}

// Float64Column returns a float64 column.
func Float64Column(name string, v []float64) Column {
	return Column{name: name, kind: Float64, f64: v}
}

// Float32Column returns a float32 column.
func Float32Column(name string, v []float32) Column {
	return Column{name: name, kind: Float32, f32: v}
}

// Int64Column returns an int64 column.
func Int64Column(name string, v []int64) Column {
	return Column{name: name, kind: Int64, i64: v}
}

// StringColumn returns a string column.
func StringColumn(name string, v []string) Column {
	return Column{name: name, kind: String, str: v}
}

func (c Column) Name() string { return c.name }
func (c Column) Kind() Kind   { return c.kind }

// Len returns the number of values.
func (c Column) Len() int {
	switch c.kind {
	case Float64:
		return len(c.f64)
	case Float32:
		return len(c.f32)
	case Int64:
		return len(c.i64)
	default:
		return len(c.str)
	}
}

// Float64s returns the backing slice of a float64 column, nil otherwise.
// Callers must not modify it.
func (c Column) Float64s() []float64 { return c.f64 }

// Float32s returns the backing slice of a float32 column, nil otherwise.
func (c Column) Float32s() []float32 { return c.f32 }

// Int64s returns the backing slice of an int64 column, nil otherwise.
func (c Column) Int64s() []int64 { return c.i64 }

// Strings returns the backing slice of a string column, nil otherwise.
func (c Column) Strings() []string { return c.str }

// Float returns value i as float64. It fails for string columns.
func (c Column) Float(i int) (float64, error) {
	switch c.kind {
	case Float64:
		return c.f64[i], nil
	case Float32:
		return float64(c.f32[i]), nil
	case Int64:
		return float64(c.i64[i]), nil
	default:
		return 0, fmt.Errorf("%w: %s is %s", ErrNotNumeric, c.name, c.kind)
	}
}

// Label returns value i rendered as a string, used for category counting.
func (c Column) Label(i int) string {
	switch c.kind {
	case Float64:
		return strconv.FormatFloat(c.f64[i], 'g', -1, 64)
	case Float32:
		return strconv.FormatFloat(float64(c.f32[i]), 'g', -1, 32)
	case Int64:
		return strconv.FormatInt(c.i64[i], 10)
	default:
		return c.str[i]
	}
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := Column{name: c.name, kind: c.kind}
	switch c.kind {
	case Float64:
		out.f64 = append([]float64(nil), c.f64...)
	case Float32:
		out.f32 = append([]float32(nil), c.f32...)
	case Int64:
		out.i64 = append([]int64(nil), c.i64...)
	default:
		out.str = append([]string(nil), c.str...)
	}
	return out
}
