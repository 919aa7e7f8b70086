// Package app wires the registry, the estimator library, metrics and logging
// into a Service that builds estimators from configuration.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/causalkit/app/plugins"
	"github.com/kilianp07/causalkit/config"
	"github.com/kilianp07/causalkit/core/causal"
	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/factory"
	coremetrics "github.com/kilianp07/causalkit/core/metrics"
	"github.com/kilianp07/causalkit/core/task"
	"github.com/kilianp07/causalkit/infra/blueprint"
	"github.com/kilianp07/causalkit/infra/logger"
	"github.com/kilianp07/causalkit/internal/eventbus"
)

// Service builds estimators through a sealed registry.
type Service struct {
	registry *causal.Registry
	inferer  task.Inferer
	recorder coremetrics.BuildRecorder
	events   *eventbus.Bus[coremetrics.BuildEvent]
	log      logger.Logger
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithRecorder sets the build recorder. A nil recorder keeps the default.
func WithRecorder(r coremetrics.BuildRecorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithInferer sets the inferer used for the outcome task when none is given.
func WithInferer(i task.Inferer) Option {
	return func(s *Service) { s.inferer = i }
}

// New creates a Service on top of reg.
func New(reg *causal.Registry, opts ...Option) *Service {
	s := &Service{
		registry: reg,
		inferer:  task.DefaultInferer{},
		recorder: coremetrics.NopRecorder{},
		events:   eventbus.New[coremetrics.BuildEvent](0),
		log:      logger.NopLogger{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewFromConfig builds the registry with the blueprint library, the
// configured deep IV runtime and the configured recorders.
func NewFromConfig(cfg *config.Config, log logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.New("service")
	}
	rec, err := coremetrics.NewRecorder(cfg.Metrics.Recorders)
	if err != nil {
		return nil, fmt.Errorf("metrics recorder: %w", err)
	}
	reg, err := causal.NewRegistry(causal.Deps{
		Library: blueprint.Library{},
		DeepIV:  plugins.ResolveRuntime(cfg.DeepIV.Runtime),
		Logger:  log.With("component", "registry"),
	})
	if err != nil {
		return nil, err
	}
	return New(reg, WithRecorder(rec), WithLogger(log)), nil
}

// Subscribe returns a channel receiving every later build event. Events are
// dropped for subscribers that do not keep up.
func (s *Service) Subscribe() <-chan coremetrics.BuildEvent { return s.events.Subscribe() }

// Unsubscribe closes a channel returned by Subscribe.
func (s *Service) Unsubscribe(ch <-chan coremetrics.BuildEvent) { s.events.Unsubscribe(ch) }

// Close closes every subscription.
func (s *Service) Close() { s.events.Close() }

// Result is the outcome of a successful build.
type Result struct {
	ID        string
	Method    string
	Factory   string
	Task      task.Kind
	Estimator estimator.Estimator
}

// MethodInfo describes a registered tag.
type MethodInfo struct {
	Tag      string
	TypeName string
}

// Methods lists the registered tags.
func (s *Service) Methods() []MethodInfo {
	tags := s.registry.Tags()
	out := make([]MethodInfo, 0, len(tags))
	for _, tag := range tags {
		e, err := s.registry.Lookup(tag)
		if err != nil {
			continue
		}
		out = append(out, MethodInfo{Tag: tag, TypeName: e.TypeName})
	}
	return out
}

// Build instantiates the factory named by method and builds an estimator.
// When req.Task is empty it is inferred from the outcome column.
func (s *Service) Build(method factory.ModuleConfig, req causal.Request) (*Result, error) {
	id := uuid.NewString()
	log := s.log.With("build_id", id)
	start := s.now()

	res, err := s.build(method, req)
	ev := coremetrics.BuildEvent{
		BuildID:  id,
		Method:   method.Type,
		Status:   status(err),
		Duration: s.now().Sub(start),
		Time:     start,
	}
	if req.Data != nil {
		ev.Rows = req.Data.Rows()
	}
	if rerr := s.recorder.RecordBuild(ev); rerr != nil {
		log.Warnf("record build: %v", rerr)
	}
	_ = eventbus.Recorder{Bus: s.events}.RecordBuild(ev)
	if err != nil {
		log.Errorf("build %s: %v", method.Type, err)
		return nil, err
	}
	res.ID = id
	log.Infow("estimator built", map[string]any{
		"method":  method.Type,
		"factory": res.Factory,
		"task":    string(res.Task),
		"rows":    ev.Rows,
	})
	return res, nil
}

func (s *Service) build(method factory.ModuleConfig, req causal.Request) (*Result, error) {
	f, err := s.registry.Create(method)
	if err != nil {
		return nil, err
	}
	if req.Task == "" && req.Data != nil && req.Outcome != "" {
		col, err := req.Data.Column(req.Outcome)
		if err != nil {
			return nil, fmt.Errorf("outcome: %w", err)
		}
		if req.Task, _, err = s.inferer.Infer(col); err != nil {
			return nil, fmt.Errorf("infer outcome task: %w", err)
		}
	}
	est, err := f.Build(req)
	if err != nil {
		return nil, err
	}
	return &Result{Method: method.Type, Factory: f.String(), Task: req.Task, Estimator: est}, nil
}

// BuildFromConfig maps the estimator section of the configuration to a
// request on data.
func (s *Service) BuildFromConfig(cfg config.EstimatorConfig, data *dataset.Frame) (*Result, error) {
	return s.Build(cfg.Method, causal.Request{
		Data:        data,
		Outcome:     cfg.Outcome,
		Task:        cfg.TaskKind(),
		Treatment:   cfg.Treatment,
		Adjustment:  cfg.Adjustment,
		Covariate:   cfg.Covariate,
		Instrument:  cfg.Instrument,
		RandomState: cfg.RandomState,
	})
}

func status(err error) string {
	var ue *deepiv.UnavailableError
	switch {
	case err == nil:
		return coremetrics.StatusOK
	case errors.Is(err, causal.ErrMissingRole):
		return coremetrics.StatusMissingRole
	case errors.As(err, &ue):
		return coremetrics.StatusUnavailable
	default:
		return coremetrics.StatusError
	}
}
