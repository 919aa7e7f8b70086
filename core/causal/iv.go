package causal

import (
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/task"
)

// IVConfig selects the stage models of the two-stage IV estimator.
type IVConfig struct {
	YModel string `json:"y_model"`
	XModel string `json:"x_model"`
}

// IVFactory builds nonparametric two-stage least squares estimators.
type IVFactory struct {
	base
	YModel string
	XModel string
}

// NewIVFactory applies the defaults lr/lr.
func NewIVFactory(d Deps, c IVConfig) *IVFactory {
	return &IVFactory{
		base:   base{deps: d},
		YModel: orDefault(c.YModel, "lr"),
		XModel: orDefault(c.XModel, "lr"),
	}
}

func (f *IVFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("IV", req, RoleInstrument, RoleTreatment); err != nil {
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
	return f.deps.Library.NewIV(estimator.IVParams{
		YModel:            y,
		XModel:            x,
		DiscreteOutcome:   req.Task.Discrete(),
		DiscreteTreatment: xTask != task.Regression,
		RandomState:       req.RandomState,
	})
}

func (f *IVFactory) String() string {
	return repr("IVFactory", "x_model", f.XModel, "y_model", f.YModel)
}
