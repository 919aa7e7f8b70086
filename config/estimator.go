package config

import (
	"fmt"

	"github.com/kilianp07/causalkit/core/factory"
	"github.com/kilianp07/causalkit/core/task"
)

// EstimatorConfig selects the estimation method and assigns causal roles to
// dataset columns.
type EstimatorConfig struct {
	// Method is the registry tag and the factory parameters.
	Method  factory.ModuleConfig `json:"method"`
	Outcome string               `json:"outcome"`
	// Task is the outcome task kind. Empty means inferred from the data.
	Task        string   `json:"task"`
	Treatment   []string `json:"treatment"`
	Adjustment  []string `json:"adjustment"`
	Covariate   []string `json:"covariate"`
	Instrument  []string `json:"instrument"`
	RandomState *int64   `json:"random_state"`
}

// DefaultMethod is used when no method type is configured.
const DefaultMethod = "dml"

// SetDefaults applies sane defaults.
func (c *EstimatorConfig) SetDefaults() {
	if c.Method.Type == "" {
		c.Method.Type = DefaultMethod
	}
}

// Validate checks mandatory fields.
func (c EstimatorConfig) Validate() error {
	if c.Outcome == "" {
		return fmt.Errorf("estimator.outcome is required")
	}
	if len(c.Treatment) == 0 {
		return fmt.Errorf("estimator.treatment is required")
	}
	if c.Task != "" {
		if _, err := task.ParseKind(c.Task); err != nil {
			return fmt.Errorf("estimator.task: %w", err)
		}
	}
	return nil
}

// TaskKind returns the parsed task, empty when it must be inferred.
func (c EstimatorConfig) TaskKind() task.Kind {
	k, _ := task.ParseKind(c.Task)
	return k
}
