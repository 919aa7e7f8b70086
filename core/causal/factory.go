package causal

import (
	"fmt"
	"strings"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/learner"
	"github.com/kilianp07/causalkit/core/task"
	"github.com/kilianp07/causalkit/infra/logger"
)

// Factory builds one kind of estimator.
type Factory interface {
	Build(req Request) (estimator.Estimator, error)
	String() string
}

// Role identifies what a set of columns stands for in the causal model.
type Role string

const (
	RoleOutcome    Role = "outcome"
	RoleTreatment  Role = "treatment"
	RoleAdjustment Role = "adjustment"
	RoleCovariate  Role = "covariate"
	RoleInstrument Role = "instrument"
)

// Request is the input of Factory.Build. A role is present when its slice
// is non-empty.
type Request struct {
	Data        *dataset.Frame
	Outcome     string
	Task        task.Kind
	Treatment   []string
	Adjustment  []string
	Covariate   []string
	Instrument  []string
	RandomState *int64
}

// Roles returns the role assignment to pass on to Estimator.Fit.
func (r Request) Roles() estimator.Roles {
	var outcome []string
	if r.Outcome != "" {
		outcome = []string{r.Outcome}
	}
	return estimator.Roles{
		Outcome:    outcome,
		Treatment:  r.Treatment,
		Adjustment: r.Adjustment,
		Covariate:  r.Covariate,
		Instrument: r.Instrument,
	}
}

func (r Request) columns(role Role) []string {
	switch role {
	case RoleOutcome:
		if r.Outcome == "" {
			return nil
		}
		return []string{r.Outcome}
	case RoleTreatment:
		return r.Treatment
	case RoleAdjustment:
		return r.Adjustment
	case RoleCovariate:
		return r.Covariate
	case RoleInstrument:
		return r.Instrument
	}
	return nil
}

// Deps are the collaborators shared by all factories of a registry.
type Deps struct {
	Library  estimator.Library
	Learners learner.Builder
	Inferer  task.Inferer
	DeepIV   deepiv.Capability
	Logger   logger.Logger
}

func (d Deps) withDefaults() (Deps, error) {
	if d.Library == nil {
		return d, fmt.Errorf("causal: estimator library is required")
	}
	if d.Learners == nil {
		d.Learners = learner.Catalog{}
	}
	if d.Inferer == nil {
		d.Inferer = task.DefaultInferer{}
	}
	if d.Logger == nil {
		d.Logger = logger.NopLogger{}
	}
	return d, nil
}

// base carries the helpers every factory uses.
type base struct {
	deps Deps
}

// requireRoles fails with a MissingRoleError for the first absent role.
func requireRoles(method string, req Request, roles ...Role) error {
	for _, role := range roles {
		if len(req.columns(role)) == 0 {
			return &MissingRoleError{Method: method, Role: role}
		}
	}
	return nil
}

// prepare runs the checks common to every Build: required roles first, then
// the presence of data.
func prepare(method string, req Request, roles ...Role) error {
	if err := requireRoles(method, req, roles...); err != nil {
		return err
	}
	if req.Data == nil {
		return fmt.Errorf("%s: %w", method, ErrNoData)
	}
	return nil
}

// treatmentTask infers the task kind of the treatment columns.
func (b base) treatmentTask(req Request) (task.Kind, error) {
	cols := make([]dataset.Column, 0, len(req.Treatment))
	for _, name := range req.Treatment {
		c, err := req.Data.Column(name)
		if err != nil {
			return "", fmt.Errorf("treatment: %w", err)
		}
		cols = append(cols, c)
	}
	kind, _, err := b.deps.Inferer.Infer(cols...)
	if err != nil {
		return "", fmt.Errorf("infer treatment task: %w", err)
	}
	return kind, nil
}

// model builds one nested model.
func (b base) model(data *dataset.Frame, family string, kind task.Kind, seed *int64) (learner.Model, error) {
	return buildSubmodel(b.deps.Learners, data, family, kind, seed, nil)
}

// buildSubmodel validates the request and delegates to the builder. Builder
// errors are returned wrapped but otherwise untouched.
func buildSubmodel(b learner.Builder, data *dataset.Frame, family string, kind task.Kind, seed *int64, opts map[string]any) (learner.Model, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: task kind is required", ErrInvalidSubmodel)
	}
	if strings.TrimSpace(family) == "" {
		return nil, fmt.Errorf("%w: learner family is required", ErrInvalidSubmodel)
	}
	m, err := b.Build(learner.Request{Data: data, Family: family, Task: kind, RandomState: seed, Options: opts})
	if err != nil {
		return nil, fmt.Errorf("build %s model for %s: %w", family, kind, err)
	}
	return m, nil
}

// CrossFitFolds maps a row count to the number of cross-fitting folds used by
// the DML and doubly-robust estimators.
func CrossFitFolds(rows int) int {
	switch {
	case rows < 1000:
		return 1
	case rows < 5000:
		return 3
	default:
		return 5
	}
}

// repr renders a factory as Name(key='value', ...). Pairs are emitted in
// the order given and nil values are shown as None.
func repr(name string, kv ...any) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v=", kv[i])
		switch v := kv[i+1].(type) {
		case string:
			fmt.Fprintf(&sb, "'%s'", v)
		case nil:
			sb.WriteString("None")
		case *int:
			if v == nil {
				sb.WriteString("None")
			} else {
				fmt.Fprintf(&sb, "%d", *v)
			}
		case []float64:
			if v == nil {
				sb.WriteString("None")
			} else {
				fmt.Fprintf(&sb, "%v", v)
			}
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
