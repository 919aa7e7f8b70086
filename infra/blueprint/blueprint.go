// Package blueprint is a plan-only estimator library. The estimators it
// returns record the fully assembled construction parameters and the roles
// they were fitted with, and can be rendered as JSON, but carry no numerical
// backend: Estimate always fails with ErrNoBackend.
package blueprint

import (
	"encoding/json"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
)

var (
	// ErrNoBackend is returned by Estimate.
	ErrNoBackend = errors.New("blueprint estimators have no numerical backend")
	// ErrNotFitted is returned by Estimate before Fit.
	ErrNotFitted = errors.New("estimator not fitted")
)

// Blueprint is an estimator description.
type Blueprint struct {
	Method string           `json:"method"`
	Params any              `json:"params"`
	Roles  *estimator.Roles `json:"roles,omitempty"`
	Rows   int              `json:"rows,omitempty"`
}

// Fit checks that every role column exists in data and records the roles.
func (b *Blueprint) Fit(data *dataset.Frame, roles estimator.Roles) error {
	if data == nil {
		return fmt.Errorf("%s fit: nil data", b.Method)
	}
	for _, group := range [][]string{roles.Outcome, roles.Treatment, roles.Adjustment, roles.Covariate, roles.Instrument} {
		for _, name := range group {
			if !data.Has(name) {
				return fmt.Errorf("%s fit: %w: %s", b.Method, dataset.ErrUnknownColumn, name)
			}
		}
	}
	r := roles
	b.Roles = &r
	b.Rows = data.Rows()
	return nil
}

func (b *Blueprint) Estimate(*dataset.Frame) (mat.Matrix, error) {
	if b.Roles == nil {
		return nil, fmt.Errorf("%s: %w", b.Method, ErrNotFitted)
	}
	return nil, fmt.Errorf("%s: %w", b.Method, ErrNoBackend)
}

// JSON renders the blueprint.
func (b *Blueprint) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Library implements estimator.Library with blueprints. Method names are the
// conventional estimator class names (DML4CATE, NP2SLS, ...).
type Library struct{}

var _ estimator.Library = Library{}

func (Library) NewDML(p estimator.DMLParams) (estimator.Estimator, error) {
	return &Blueprint{Method: "DML4CATE", Params: p}, nil
}

func (Library) NewDoublyRobust(p estimator.DRParams) (estimator.Estimator, error) {
	return &Blueprint{Method: "DoublyRobust", Params: p}, nil
}

func (Library) NewMetaLearner(p estimator.MetaLearnerParams) (estimator.Estimator, error) {
	return &Blueprint{Method: p.Kind.String(), Params: p}, nil
}

func (Library) NewCausalTree(p estimator.CausalTreeParams) (estimator.Estimator, error) {
	return &Blueprint{Method: "CausalTree", Params: p}, nil
}

func (Library) NewApproxBound(p estimator.ApproxBoundParams) (estimator.Estimator, error) {
	return &Blueprint{Method: "ApproxBound", Params: p}, nil
}

func (Library) NewIV(p estimator.IVParams) (estimator.Estimator, error) {
	return &Blueprint{Method: "NP2SLS", Params: p}, nil
}

// Runtime is a deepiv.Runtime producing blueprint networks.
type Runtime struct{}

var _ deepiv.Runtime = Runtime{}

func (Runtime) Name() string { return "blueprint" }

func (Runtime) NewDeepIV(p deepiv.Params) (deepiv.Network, error) {
	return &Network{Blueprint{Method: "DeepIV", Params: p}}, nil
}

// Network adapts Blueprint to deepiv.Network.
type Network struct {
	Blueprint
}

func (n *Network) Estimate(data *dataset.Frame) (any, error) {
	return n.Blueprint.Estimate(data)
}
