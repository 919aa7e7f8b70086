// Package learner turns a base-learner family name ("rf", "gb", "lr", ...)
// and a task kind into a task-aware model handed to an estimator as one of
// its nuisance models.
package learner

import (
	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/task"
)

// Model is a task-aware, unfitted base learner. The concrete value is owned
// by the estimator library that consumes it.
type Model interface {
	// Family is the base-learner family the model was built from.
	Family() string
	// Task is the task kind the model was specialised for.
	Task() task.Kind
}

// Request carries everything a Builder needs to produce a model.
type Request struct {
	Data        *dataset.Frame
	Family      string
	Task        task.Kind
	RandomState *int64
	Options     map[string]any
}

// Builder constructs task-aware models.
type Builder interface {
	Build(req Request) (Model, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(req Request) (Model, error)

func (f BuilderFunc) Build(req Request) (Model, error) { return f(req) }
