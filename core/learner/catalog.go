package learner

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kilianp07/causalkit/core/task"
)

// ErrUnknownFamily is returned for a family name missing from the catalog.
var ErrUnknownFamily = errors.New("unknown learner family")

// Spec is the Model produced by Catalog: a fully resolved description of a
// base learner that a numerical backend can instantiate.
type Spec struct {
	FamilyName  string         `json:"family"`
	Estimator   string         `json:"estimator"`
	Kind        task.Kind      `json:"task"`
	RandomState *int64         `json:"random_state,omitempty"`
	Params      map[string]any `json:"params,omitempty"`
}

func (s *Spec) Family() string  { return s.FamilyName }
func (s *Spec) Task() task.Kind { return s.Kind }

func (s *Spec) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}

type family struct {
	regressor  string
	classifier string
	// seeded families accept a random state.
	seeded bool
}

var families = map[string]family{
	"lr":   {regressor: "LinearRegression", classifier: "LogisticRegression"},
	"rf":   {regressor: "RandomForestRegressor", classifier: "RandomForestClassifier", seeded: true},
	"gb":   {regressor: "GradientBoostingRegressor", classifier: "GradientBoostingClassifier", seeded: true},
	"tree": {regressor: "DecisionTreeRegressor", classifier: "DecisionTreeClassifier", seeded: true},
	"nn":   {regressor: "MLPRegressor", classifier: "MLPClassifier", seeded: true},
	"knn":  {regressor: "KNeighborsRegressor", classifier: "KNeighborsClassifier"},
}

// Families lists the family names known to the catalog.
func Families() []string {
	out := make([]string, 0, len(families))
	for k := range families {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Catalog is the default Builder. It resolves the family name to a
// regressor or classifier depending on the task and forwards the seed and
// options. The dataset is not inspected.
type Catalog struct{}

func (Catalog) Build(req Request) (Model, error) {
	name := strings.ToLower(strings.TrimSpace(req.Family))
	fam, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, req.Family)
	}
	if !req.Task.Valid() {
		return nil, fmt.Errorf("%w: %q", task.ErrUnknownKind, req.Task)
	}
	spec := &Spec{FamilyName: name, Kind: req.Task, Estimator: fam.regressor}
	if req.Task.Discrete() {
		spec.Estimator = fam.classifier
	}
	if fam.seeded && req.RandomState != nil {
		seed := *req.RandomState
		spec.RandomState = &seed
	}
	if len(req.Options) > 0 {
		spec.Params = make(map[string]any, len(req.Options))
		for k, v := range req.Options {
			spec.Params[k] = v
		}
	}
	return spec, nil
}
