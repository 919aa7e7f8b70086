package causal

import (
	"github.com/kilianp07/causalkit/core/estimator"
)

// MetaLearnerConfig selects the learner flavour and its base model. Leaner
// is the historical spelling and is used when Learner is empty.
type MetaLearnerConfig struct {
	Learner string `json:"learner"`
	Leaner  string `json:"leaner"`
	Model   string `json:"model"`
}

// MetaLearnerFactory builds S-, T- or X-learners.
type MetaLearnerFactory struct {
	base
	Learner string
	Kind    estimator.LearnerKind
	Model   string
}

// NewMetaLearnerFactory decodes the learner code up front so a bad code
// fails before any data is seen. Defaults: tlearner, gb.
func NewMetaLearnerFactory(d Deps, c MetaLearnerConfig) (*MetaLearnerFactory, error) {
	code := c.Learner
	if code == "" {
		code = c.Leaner
	}
	code = orDefault(code, "tlearner")
	kind, err := estimator.ParseLearnerKind(code)
	if err != nil {
		return nil, err
	}
	return &MetaLearnerFactory{
		base:    base{deps: d},
		Learner: code,
		Kind:    kind,
		Model:   orDefault(c.Model, "gb"),
	}, nil
}

func (f *MetaLearnerFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("MetaLearner", req, RoleAdjustment); err != nil {
		return nil, err
	}
	m, err := f.model(req.Data, f.Model, req.Task, req.RandomState)
	if err != nil {
		return nil, err
	}
	return f.deps.Library.NewMetaLearner(estimator.MetaLearnerParams{
		Kind:            f.Kind,
		Model:           m,
		DiscreteOutcome: req.Task.Discrete(),
		RandomState:     req.RandomState,
	})
}

func (f *MetaLearnerFactory) String() string {
	return repr("MetaLearnerFactory", "learner", f.Learner, "model", f.Model)
}
