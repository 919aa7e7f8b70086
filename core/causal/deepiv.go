package causal

import (
	"fmt"

	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/task"
)

// DeepIVConfig holds the network choices of the deep IV estimator.
type DeepIVConfig struct {
	XNet        string `json:"x_net"`
	YNet        string `json:"y_net"`
	XHiddenD    *int   `json:"x_hidden_d"`
	YHiddenD    *int   `json:"y_hidden_d"`
	NumGaussian int    `json:"num_gaussian"`
}

// DeepIVFactory builds deep IV estimators on the linked runtime.
type DeepIVFactory struct {
	base
	runtime     deepiv.Runtime
	XNet        string
	YNet        string
	XHiddenD    *int
	YHiddenD    *int
	NumGaussian int
}

// NewDeepIVFactory fails with *deepiv.UnavailableError when no runtime is
// linked. NumGaussian defaults to 5.
func NewDeepIVFactory(d Deps, c DeepIVConfig) (*DeepIVFactory, error) {
	rt, err := d.DeepIV.Runtime()
	if err != nil {
		return nil, err
	}
	if c.NumGaussian < 0 {
		return nil, fmt.Errorf("num_gaussian must not be negative, got %d", c.NumGaussian)
	}
	if c.NumGaussian == 0 {
		c.NumGaussian = 5
	}
	return &DeepIVFactory{
		base:        base{deps: d},
		runtime:     rt,
		XNet:        c.XNet,
		YNet:        c.YNet,
		XHiddenD:    c.XHiddenD,
		YHiddenD:    c.YHiddenD,
		NumGaussian: c.NumGaussian,
	}, nil
}

func (f *DeepIVFactory) Build(req Request) (estimator.Estimator, error) {
	if err := prepare("DeepIV", req, RoleInstrument, RoleTreatment); err != nil {
		return nil, err
	}
	xTask, err := f.treatmentTask(req)
	if err != nil {
		return nil, err
	}
	net, err := f.runtime.NewDeepIV(deepiv.Params{
		XNet:              f.XNet,
		YNet:              f.YNet,
		XHiddenD:          f.XHiddenD,
		YHiddenD:          f.YHiddenD,
		NumGaussian:       f.NumGaussian,
		DiscreteOutcome:   req.Task.Discrete(),
		DiscreteTreatment: xTask != task.Regression,
		RandomState:       req.RandomState,
	})
	if err != nil {
		return nil, fmt.Errorf("deep IV on %s: %w", f.runtime.Name(), err)
	}
	return deepiv.NewAdapter(net), nil
}

func (f *DeepIVFactory) String() string {
	return repr("DeepIVFactory",
		"num_gaussian", f.NumGaussian,
		"x_hidden_d", f.XHiddenD,
		"x_net", nilIfEmpty(f.XNet),
		"y_hidden_d", f.YHiddenD,
		"y_net", nilIfEmpty(f.YNet))
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
