package causal

import "github.com/kilianp07/causalkit/core/estimator"

// CausalTreeFactory builds causal trees. It has no learner choices.
type CausalTreeFactory struct {
	base
}

func NewCausalTreeFactory(d Deps) *CausalTreeFactory {
	return &CausalTreeFactory{base: base{deps: d}}
}

func (f *CausalTreeFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("CausalTree", req, RoleAdjustment); err != nil {
		return nil, err
	}
	return f.deps.Library.NewCausalTree(estimator.CausalTreeParams{RandomState: req.RandomState})
}

func (f *CausalTreeFactory) String() string { return repr("CausalTreeFactory") }
