package estimator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LearnerKind selects the meta-learner flavour.
type LearnerKind int

const (
	SLearner LearnerKind = iota + 1
	TLearner
	XLearner
)

// ErrUnknownLearner is matched by every UnknownLearnerError.
var ErrUnknownLearner = errors.New("unknown meta-learner")

// UnknownLearnerError reports a learner code that does not start with s, t
// or x.
type UnknownLearnerError struct {
	Input string
}

func (e *UnknownLearnerError) Error() string {
	return fmt.Sprintf("unknown meta-learner %q: expected a name starting with s, t or x", e.Input)
}

func (e *UnknownLearnerError) Is(target error) bool { return target == ErrUnknownLearner }

// ParseLearnerKind decodes a learner code by its first non-space character,
// ignoring case: "T", " x ", "s_custom" and "tleaner" are all valid.
func ParseLearnerKind(s string) (LearnerKind, error) {
	trimmed := strings.TrimSpace(s)
	r, _ := utf8.DecodeRuneInString(trimmed)
	switch unicode.ToLower(r) {
	case 's':
		return SLearner, nil
	case 't':
		return TLearner, nil
	case 'x':
		return XLearner, nil
	}
	return 0, &UnknownLearnerError{Input: s}
}

func (k LearnerKind) String() string {
	switch k {
	case SLearner:
		return "SLearner"
	case TLearner:
		return "TLearner"
	case XLearner:
		return "XLearner"
	default:
		return fmt.Sprintf("LearnerKind(%d)", int(k))
	}
}

// MarshalText renders the kind by name.
func (k LearnerKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
