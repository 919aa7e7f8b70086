package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/causalkit/core/dataset"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"regression":     Regression,
		" Binary ":       Binary,
		"multiclass":     Multiclass,
		"classification": Multiclass,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("ranking")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindDiscrete(t *testing.T) {
	assert.False(t, Regression.Discrete())
	assert.True(t, Binary.Discrete())
	assert.True(t, Multiclass.Discrete())
	assert.False(t, Kind("").Discrete())
}

func TestDefaultInferer(t *testing.T) {
	inf := DefaultInferer{}

	k, labels, err := inf.Infer(dataset.Int64Column("t", []int64{0, 1, 1, 0}))
	require.NoError(t, err)
	assert.Equal(t, Binary, k)
	assert.Equal(t, []string{"0", "1"}, labels)

	k, _, err = inf.Infer(dataset.Float64Column("t", []float64{0.5, 1.5, 2.5}))
	require.NoError(t, err)
	assert.Equal(t, Regression, k)

	k, labels, err = inf.Infer(dataset.StringColumn("t", []string{"a", "c", "b", "a"}))
	require.NoError(t, err)
	assert.Equal(t, Multiclass, k)
	assert.Equal(t, []string{"a", "b", "c"}, labels)

	k, _, err = inf.Infer(dataset.Int64Column("t", []int64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, Multiclass, k)
}

func TestDefaultInferer_ManyIntegers(t *testing.T) {
	v := make([]int64, MaxClasses+1)
	s := make([]string, MaxClasses+1)
	for i := range v {
		v[i] = int64(i)
		s[i] = dataset.Int64Column("", v).Label(i)
	}
	k, _, err := DefaultInferer{}.Infer(dataset.Int64Column("t", v))
	require.NoError(t, err)
	assert.Equal(t, Regression, k)

	_, _, err = DefaultInferer{}.Infer(dataset.StringColumn("t", s))
	assert.ErrorIs(t, err, ErrTooManyClasses)
}

func TestDefaultInferer_PoolsColumns(t *testing.T) {
	k, _, err := DefaultInferer{}.Infer(
		dataset.Int64Column("a", []int64{0, 1}),
		dataset.Int64Column("b", []int64{1, 2}),
	)
	require.NoError(t, err)
	assert.Equal(t, Multiclass, k)

	_, _, err = DefaultInferer{}.Infer()
	assert.Error(t, err)
}
