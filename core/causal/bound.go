package causal

import (
	"fmt"

	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/task"
)

// ApproxBoundConfig selects the base learners of the bounds estimator and
// optionally overrides the treatment probabilities.
type ApproxBoundConfig struct {
	YModel string    `json:"y_model"`
	XModel string    `json:"x_model"`
	XProb  []float64 `json:"x_prob"`
}

// ApproxBoundFactory builds approximation-bound estimators.
type ApproxBoundFactory struct {
	base
	YModel string
	XModel string
	XProb  []float64
}

// NewApproxBoundFactory applies the defaults gb/rf. XProb entries must lie in
// [0, 1].
func NewApproxBoundFactory(d Deps, c ApproxBoundConfig) (*ApproxBoundFactory, error) {
	for i, p := range c.XProb {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("x_prob[%d]=%g is not a probability", i, p)
		}
	}
	return &ApproxBoundFactory{
		base:   base{deps: d},
		YModel: orDefault(c.YModel, "gb"),
		XModel: orDefault(c.XModel, "rf"),
		XProb:  append([]float64(nil), c.XProb...),
	}, nil
}

func (f *ApproxBoundFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("ApproxBound", req, RoleCovariate, RoleTreatment); err != nil {
		return nil, err
	}
	xTask, err := f.treatmentTask(req)
	if err != nil {
		return nil, err
	}
	y, err := f.model(req.Data, f.YModel, req.Task, req.RandomState)
	if err != nil {
		return nil, err
	}
	x, err := f.model(req.Data, f.XModel, xTask, req.RandomState)
	if err != nil {
		return nil, err
	}
	return f.deps.Library.NewApproxBound(estimator.ApproxBoundParams{
		YModel:            y,
		XModel:            x,
		XProb:             append([]float64(nil), f.XProb...),
		DiscreteTreatment: xTask != task.Regression,
		RandomState:       req.RandomState,
	})
}

func (f *ApproxBoundFactory) String() string {
	return repr("ApproxBoundFactory", "x_model", f.XModel, "x_prob", f.XProb, "y_model", f.YModel)
}
