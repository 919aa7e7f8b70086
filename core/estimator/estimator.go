// Package estimator declares the contracts of the external causal estimator
// library: the estimator capability itself and one constructor per method.
// Nothing in this package estimates anything; implementations are supplied by
// the caller (see infra/blueprint for the plan-only one).
package estimator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/learner"
)

// Roles names the columns playing each causal role.
type Roles struct {
	Outcome    []string `json:"outcome"`
	Treatment  []string `json:"treatment"`
	Adjustment []string `json:"adjustment,omitempty"`
	Covariate  []string `json:"covariate,omitempty"`
	Instrument []string `json:"instrument,omitempty"`
}

// Estimator is a causal-effect estimator built by a factory. It is owned by
// the caller once returned.
type Estimator interface {
	Fit(data *dataset.Frame, roles Roles) error
	// Estimate returns the estimated effects. A nil frame estimates on the
	// training data.
	Estimate(data *dataset.Frame) (mat.Matrix, error)
}

// DMLParams configures a double machine-learning CATE estimator.
type DMLParams struct {
	YModel            learner.Model `json:"y_model"`
	XModel            learner.Model `json:"x_model"`
	YXModel           learner.Model `json:"yx_model"`
	DiscreteTreatment bool          `json:"is_discrete_treatment"`
	CFFold            int           `json:"cf_fold"`
	RandomState       *int64        `json:"random_state,omitempty"`
}

// DRParams configures a doubly-robust estimator.
type DRParams struct {
	YModel      learner.Model `json:"y_model"`
	XModel      learner.Model `json:"x_model"`
	YXModel     learner.Model `json:"yx_model"`
	CFFold      int           `json:"cf_fold"`
	RandomState *int64        `json:"random_state,omitempty"`
}

// MetaLearnerParams configures an S-, T- or X-learner.
type MetaLearnerParams struct {
	Kind            LearnerKind   `json:"kind"`
	Model           learner.Model `json:"model"`
	DiscreteOutcome bool          `json:"is_discrete_outcome"`
	RandomState     *int64        `json:"random_state,omitempty"`
}

// CausalTreeParams configures a causal tree.
type CausalTreeParams struct {
	RandomState *int64 `json:"random_state,omitempty"`
}

// ApproxBoundParams configures a no-assumption bounds estimator.
type ApproxBoundParams struct {
	YModel            learner.Model `json:"y_model"`
	XModel            learner.Model `json:"x_model"`
	XProb             []float64     `json:"x_prob,omitempty"`
	DiscreteTreatment bool          `json:"is_discrete_treatment"`
	RandomState       *int64        `json:"random_state,omitempty"`
}

// IVParams configures a nonparametric two-stage least squares estimator.
type IVParams struct {
	YModel            learner.Model `json:"y_model"`
	XModel            learner.Model `json:"x_model"`
	DiscreteOutcome   bool          `json:"is_discrete_outcome"`
	DiscreteTreatment bool          `json:"is_discrete_treatment"`
	RandomState       *int64        `json:"random_state,omitempty"`
}

// Library constructs estimators. Each method maps to one causal methodology.
type Library interface {
	NewDML(p DMLParams) (Estimator, error)
	NewDoublyRobust(p DRParams) (Estimator, error)
	NewMetaLearner(p MetaLearnerParams) (Estimator, error)
	NewCausalTree(p CausalTreeParams) (Estimator, error)
	NewApproxBound(p ApproxBoundParams) (Estimator, error)
	NewIV(p IVParams) (Estimator, error)
}
