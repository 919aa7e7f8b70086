package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/causalkit/core/task"
)

func TestCatalog_ResolvesByTask(t *testing.T) {
	seed := int64(7)
	cases := []struct {
		family string
		kind   task.Kind
		want   string
	}{
		{"rf", task.Regression, "RandomForestRegressor"},
		{"rf", task.Binary, "RandomForestClassifier"},
		{" GB ", task.Multiclass, "GradientBoostingClassifier"},
		{"lr", task.Regression, "LinearRegression"},
		{"lr", task.Binary, "LogisticRegression"},
		{"tree", task.Regression, "DecisionTreeRegressor"},
		{"nn", task.Binary, "MLPClassifier"},
		{"knn", task.Regression, "KNeighborsRegressor"},
	}
	for _, tc := range cases {
		m, err := Catalog{}.Build(Request{Family: tc.family, Task: tc.kind, RandomState: &seed})
		require.NoError(t, err, tc.family)
		spec := m.(*Spec)
		assert.Equal(t, tc.want, spec.Estimator)
		assert.Equal(t, tc.kind, m.Task())
	}
}

func TestCatalog_Seed(t *testing.T) {
	seed := int64(42)
	m, err := Catalog{}.Build(Request{Family: "rf", Task: task.Regression, RandomState: &seed})
	require.NoError(t, err)
	require.NotNil(t, m.(*Spec).RandomState)
	assert.Equal(t, int64(42), *m.(*Spec).RandomState)

	m, err = Catalog{}.Build(Request{Family: "lr", Task: task.Regression, RandomState: &seed})
	require.NoError(t, err)
	assert.Nil(t, m.(*Spec).RandomState, "linear models take no seed")
}

func TestCatalog_Options(t *testing.T) {
	opts := map[string]any{"max_depth": 3}
	m, err := Catalog{}.Build(Request{Family: "gb", Task: task.Binary, Options: opts})
	require.NoError(t, err)
	opts["max_depth"] = 9
	assert.Equal(t, 3, m.(*Spec).Params["max_depth"])
	assert.Contains(t, m.(*Spec).String(), `"estimator":"GradientBoostingClassifier"`)
}

func TestCatalog_Errors(t *testing.T) {
	_, err := Catalog{}.Build(Request{Family: "svm", Task: task.Regression})
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = Catalog{}.Build(Request{Family: "rf", Task: "ranking"})
	assert.ErrorIs(t, err, task.ErrUnknownKind)
}

func TestFamilies(t *testing.T) {
	assert.Equal(t, []string{"gb", "knn", "lr", "nn", "rf", "tree"}, Families())
}
