package task

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kilianp07/causalkit/core/dataset"
)

// MaxClasses is the number of distinct values above which an integer column
// is treated as a regression target.
const MaxClasses = 1000

// ErrTooManyClasses is returned for string columns with more than MaxClasses
// distinct values.
var ErrTooManyClasses = errors.New("too many distinct labels")

// Inferer infers the task kind of one or more columns.
type Inferer interface {
	// Infer returns the kind and, for classification, the sorted labels.
	Infer(cols ...dataset.Column) (Kind, []string, error)
}

// InfererFunc adapts a function to Inferer.
type InfererFunc func(cols ...dataset.Column) (Kind, []string, error)

func (f InfererFunc) Infer(cols ...dataset.Column) (Kind, []string, error) { return f(cols...) }

// DefaultInferer pools the values of all given columns and decides:
// exactly two distinct values is binary; otherwise any float column makes
// it regression; integer columns with more than MaxClasses values are
// regression; everything else is multiclass.
type DefaultInferer struct{}

func (DefaultInferer) Infer(cols ...dataset.Column) (Kind, []string, error) {
	if len(cols) == 0 {
		return "", nil, errors.New("task inference needs at least one column")
	}
	seen := map[string]struct{}{}
	floating, text := false, false
	for _, c := range cols {
		switch c.Kind() {
		case dataset.Float64, dataset.Float32:
			floating = true
		case dataset.String:
			text = true
		}
		for i := 0; i < c.Len(); i++ {
			seen[c.Label(i)] = struct{}{}
		}
	}
	if len(seen) == 2 {
		return Binary, sortedLabels(seen), nil
	}
	if floating && !text {
		return Regression, nil, nil
	}
	if len(seen) > MaxClasses {
		if text {
			return "", nil, fmt.Errorf("%w: %d", ErrTooManyClasses, len(seen))
		}
		return Regression, nil, nil
	}
	return Multiclass, sortedLabels(seen), nil
}

func sortedLabels(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
