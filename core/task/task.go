// Package task describes what kind of prediction problem a column poses and
// how that kind is inferred from data.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the task kind of a target column.
type Kind string

const (
	Regression Kind = "regression"
	Binary     Kind = "binary"
	Multiclass Kind = "multiclass"
)

// ErrUnknownKind is returned when parsing an unrecognised task kind.
var ErrUnknownKind = errors.New("unknown task kind")

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Regression, Binary, Multiclass:
		return true
	}
	return false
}

// Discrete reports whether the kind is a classification task.
func (k Kind) Discrete() bool { return k.Valid() && k != Regression }

// ParseKind decodes a task kind. "classification" is accepted as an alias of
// multiclass.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Regression, Binary, Multiclass:
		return k, nil
	case "classification":
		return Multiclass, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
