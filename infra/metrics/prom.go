package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/causalkit/core/metrics"
)

// PromRecorder records estimator builds in Prometheus metrics.
type PromRecorder struct {
	builds  *prometheus.CounterVec
	latency *prometheus.HistogramVec
	rows    *prometheus.GaugeVec
}

// NewPromRecorder registers build metrics on the default Prometheus registerer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered under the same names are reused.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "causal_estimator_builds_total",
		Help: "Total number of estimator builds by method and status",
	}, []string{"method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "causal_estimator_build_seconds",
		Help:    "Time spent assembling an estimator",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"method"})
	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "causal_estimator_dataset_rows",
		Help: "Row count of the dataset used by the last build",
	}, []string{"method"})

	var err error
	if builds, err = register(reg, builds); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if rows, err = register(reg, rows); err != nil {
		return nil, err
	}
	return &PromRecorder{builds: builds, latency: latency, rows: rows}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordBuild updates the counters for one build.
func (r *PromRecorder) RecordBuild(ev coremetrics.BuildEvent) error {
	status := ev.Status
	if status == "" {
		status = coremetrics.StatusOK
	}
	r.builds.WithLabelValues(ev.Method, status).Inc()
	r.latency.WithLabelValues(ev.Method).Observe(ev.Duration.Seconds())
	if status == coremetrics.StatusOK {
		r.rows.WithLabelValues(ev.Method).Set(float64(ev.Rows))
	}
	return nil
}
