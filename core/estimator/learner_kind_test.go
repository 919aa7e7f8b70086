package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLearnerKind(t *testing.T) {
	cases := map[string]LearnerKind{
		"T":        TLearner,
		" x ":      XLearner,
		"s_custom": SLearner,
		"tleaner":  TLearner,
		"XLearner": XLearner,
	}
	for in, want := range cases {
		got, err := ParseLearnerKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseLearnerKind_Rejects(t *testing.T) {
	for _, in := range []string{"q", "", "   ", "doubly"} {
		_, err := ParseLearnerKind(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrUnknownLearner)
		var ule *UnknownLearnerError
		require.True(t, errors.As(err, &ule))
		assert.Equal(t, in, ule.Input)
	}
}

func TestLearnerKindText(t *testing.T) {
	b, err := XLearner.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "XLearner", string(b))
	assert.Equal(t, "LearnerKind(9)", LearnerKind(9).String())
}
