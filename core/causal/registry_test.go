package causal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/factory"
	"github.com/kilianp07/causalkit/core/task"
)

var allTags = []string{
	"approx_bound", "bound", "causal_tree", "deep_iv", "div", "dml", "dr",
	"iv", "meta_leaner", "meta_learner", "ml", "tree",
}

func TestNewRegistry_Tags(t *testing.T) {
	reg, err := NewRegistry(Deps{Library: &recLibrary{}, DeepIV: deepiv.Resolve(fakeRuntime{})})
	require.NoError(t, err)
	assert.Equal(t, allTags, reg.Tags())
	assert.True(t, reg.Sealed())

	for _, tag := range allTags {
		f, err := reg.Create(factory.ModuleConfig{Type: tag})
		require.NoError(t, err, tag)
		assert.NotNil(t, f, tag)
	}
}

func TestNewRegistry_Aliases(t *testing.T) {
	reg, err := NewRegistry(Deps{Library: &recLibrary{}})
	require.NoError(t, err)

	pairs := [][2]string{{"meta_learner", "ml"}, {"meta_leaner", "ml"}, {"causal_tree", "tree"}, {"approx_bound", "bound"}, {"deep_iv", "div"}}
	for _, p := range pairs {
		a, err := reg.Lookup(p[0])
		require.NoError(t, err)
		b, err := reg.Lookup(p[1])
		require.NoError(t, err)
		assert.Equal(t, a.TypeName, b.TypeName)
	}
	e, err := reg.Lookup("dml")
	require.NoError(t, err)
	assert.Equal(t, "DMLFactory", e.TypeName)
}

func TestNewRegistry_RejectsLateRegistration(t *testing.T) {
	reg, err := NewRegistry(Deps{Library: &recLibrary{}})
	require.NoError(t, err)
	err = reg.Register("dml", func(map[string]any) (Factory, error) { return nil, nil })
	assert.ErrorIs(t, err, factory.ErrSealed)
}

func TestNewRegistry_RequiresLibrary(t *testing.T) {
	_, err := NewRegistry(Deps{})
	assert.Error(t, err)
}

func TestNewRegistry_DecodesConf(t *testing.T) {
	lib := &recLibrary{}
	reg, err := NewRegistry(Deps{Library: lib})
	require.NoError(t, err)

	f, err := reg.Create(factory.ModuleConfig{Type: "ml", Conf: map[string]any{"leaner": " X ", "model": "lr"}})
	require.NoError(t, err)
	ml := f.(*MetaLearnerFactory)
	assert.Equal(t, estimator.XLearner, ml.Kind)
	assert.Equal(t, "lr", ml.Model)

	_, err = reg.Create(factory.ModuleConfig{Type: "ml", Conf: map[string]any{"leaner": "q"}})
	assert.ErrorIs(t, err, estimator.ErrUnknownLearner)

	_, err = reg.Create(factory.ModuleConfig{Type: "dml", Conf: map[string]any{"z_model": "rf"}})
	assert.Error(t, err)

	_, err = reg.Create(factory.ModuleConfig{Type: "tree", Conf: map[string]any{"depth": 3}})
	assert.Error(t, err)

	f, err = reg.Create(factory.ModuleConfig{Type: "bound", Conf: map[string]any{"x_prob": []any{0.2, 0.8}}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.8}, f.(*ApproxBoundFactory).XProb)

	_, err = reg.Create(factory.ModuleConfig{Type: "nope"})
	assert.ErrorIs(t, err, factory.ErrUnknownType)
}

func TestNewRegistry_DeepIVUnavailable(t *testing.T) {
	log := &warnCounter{}
	reg, err := NewRegistry(Deps{Library: &recLibrary{}, Logger: log})
	require.NoError(t, err)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "deep IV disabled")

	for _, tag := range []string{"deep_iv", "div"} {
		_, err = reg.Create(factory.ModuleConfig{Type: tag})
		var ue *deepiv.UnavailableError
		require.ErrorAs(t, err, &ue, tag)
		assert.ErrorIs(t, err, deepiv.ErrRuntimeUnavailable)
	}

	f, err := reg.Create(factory.ModuleConfig{Type: "dml"})
	require.NoError(t, err)
	_, err = f.Build(Request{
		Data: testData(10), Outcome: "y", Task: task.Regression,
		Treatment: []string{"x"}, Adjustment: []string{"w"}, Covariate: []string{"v"},
	})
	assert.NoError(t, err)
}

func TestNewRegistry_DeepIVAvailableNoWarning(t *testing.T) {
	log := &warnCounter{}
	_, err := NewRegistry(Deps{Library: &recLibrary{}, Logger: log, DeepIV: deepiv.Resolve(fakeRuntime{})})
	require.NoError(t, err)
	assert.Empty(t, log.warns)
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, err := NewRegistry(Deps{Library: &recLibrary{}})
	require.NoError(t, err)
	b := factory.NewRegistry[Factory]()
	require.NoError(t, b.RegisterType(&DMLFactory{}, func(map[string]any) (Factory, error) { return nil, nil }))
	assert.Len(t, b.Tags(), 1)
	assert.Len(t, a.Tags(), len(allTags))
}
