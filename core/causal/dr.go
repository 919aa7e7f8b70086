package causal

import (
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/task"
)

// DRConfig selects the base learners of a doubly-robust estimator.
type DRConfig struct {
	YModel  string `json:"y_model"`
	XModel  string `json:"x_model"`
	YXModel string `json:"yx_model"`
}

// DRFactory builds doubly-robust estimators.
type DRFactory struct {
	base
	YModel  string
	XModel  string
	YXModel string
}

// NewDRFactory applies the defaults gb/rf/gb to empty fields.
func NewDRFactory(d Deps, c DRConfig) *DRFactory {
	return &DRFactory{
		base:    base{deps: d},
		YModel:  orDefault(c.YModel, "gb"),
		XModel:  orDefault(c.XModel, "rf"),
		YXModel: orDefault(c.YXModel, "gb"),
	}
}

func (f *DRFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("DoublyRobust", req, RoleAdjustment, RoleTreatment); err != nil {
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
	yx, err := f.model(req.Data, f.YXModel, task.Regression, req.RandomState)
	if err != nil {
		return nil, err
	}
	return f.deps.Library.NewDoublyRobust(estimator.DRParams{
		YModel:      y,
		XModel:      x,
		YXModel:     yx,
		CFFold:      CrossFitFolds(req.Data.Rows()),
		RandomState: req.RandomState,
	})
}

func (f *DRFactory) String() string {
	return repr("DRFactory", "x_model", f.XModel, "y_model", f.YModel, "yx_model", f.YXModel)
}
