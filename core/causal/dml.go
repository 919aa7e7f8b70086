package causal

import (
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/task"
)

// DMLConfig selects the base learners of a DML estimator.
type DMLConfig struct {
	YModel  string `json:"y_model"`
	XModel  string `json:"x_model"`
	YXModel string `json:"yx_model"`
}

// DMLFactory builds double machine-learning CATE estimators.
type DMLFactory struct {
	base
	YModel  string
	XModel  string
	YXModel string
}

// NewDMLFactory applies the defaults rf/rf/lr to empty fields.
func NewDMLFactory(d Deps, c DMLConfig) *DMLFactory {
	return &DMLFactory{
		base:    base{deps: d},
		YModel:  orDefault(c.YModel, "rf"),
		XModel:  orDefault(c.XModel, "rf"),
		YXModel: orDefault(c.YXModel, "lr"),
	}
}

func (f *DMLFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("DML", req, RoleAdjustment, RoleCovariate, RoleTreatment); err != nil {
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
	return f.deps.Library.NewDML(estimator.DMLParams{
		YModel:            y,
		XModel:            x,
		YXModel:           yx,
		DiscreteTreatment: xTask != task.Regression,
		CFFold:            CrossFitFolds(req.Data.Rows()),
		RandomState:       req.RandomState,
	})
}

func (f *DMLFactory) String() string {
	return repr("DMLFactory", "x_model", f.XModel, "y_model", f.YModel, "yx_model", f.YXModel)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
