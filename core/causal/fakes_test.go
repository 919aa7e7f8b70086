package causal

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/core/learner"
	"github.com/kilianp07/causalkit/infra/logger"
)

type fakeEstimator struct {
	method string
	params any
}

func (*fakeEstimator) Fit(*dataset.Frame, estimator.Roles) error  { return nil }
func (*fakeEstimator) Estimate(*dataset.Frame) (mat.Matrix, error) { return nil, nil }

// recLibrary records the parameters of every constructor call.
type recLibrary struct {
	last *fakeEstimator
}

func (l *recLibrary) record(method string, p any) (estimator.Estimator, error) {
	l.last = &fakeEstimator{method: method, params: p}
	return l.last, nil
}

func (l *recLibrary) NewDML(p estimator.DMLParams) (estimator.Estimator, error) {
	return l.record("dml", p)
}

func (l *recLibrary) NewDoublyRobust(p estimator.DRParams) (estimator.Estimator, error) {
	return l.record("dr", p)
}

func (l *recLibrary) NewMetaLearner(p estimator.MetaLearnerParams) (estimator.Estimator, error) {
	return l.record("ml", p)
}

func (l *recLibrary) NewCausalTree(p estimator.CausalTreeParams) (estimator.Estimator, error) {
	return l.record("tree", p)
}

func (l *recLibrary) NewApproxBound(p estimator.ApproxBoundParams) (estimator.Estimator, error) {
	return l.record("bound", p)
}

func (l *recLibrary) NewIV(p estimator.IVParams) (estimator.Estimator, error) {
	return l.record("iv", p)
}

// recBuilder records sub-model requests and delegates to the catalog.
type recBuilder struct {
	reqs []learner.Request
	err  error
}

func (b *recBuilder) Build(req learner.Request) (learner.Model, error) {
	b.reqs = append(b.reqs, req)
	if b.err != nil {
		return nil, b.err
	}
	return learner.Catalog{}.Build(req)
}

type fakeNetwork struct {
	params deepiv.Params
}

func (*fakeNetwork) Fit(*dataset.Frame, estimator.Roles) error { return nil }
func (*fakeNetwork) Estimate(*dataset.Frame) (any, error)      { return []float32{1}, nil }

type fakeRuntime struct{}

func (fakeRuntime) Name() string { return "fake" }

func (fakeRuntime) NewDeepIV(p deepiv.Params) (deepiv.Network, error) {
	return &fakeNetwork{params: p}, nil
}

// warnCounter counts warnings.
type warnCounter struct {
	logger.NopLogger
	mu    sync.Mutex
	warns []string
}

func (w *warnCounter) Warnf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warns = append(w.warns, fmt.Sprintf(format, args...))
}

// testData returns n rows with a continuous outcome, a binary treatment, a
// continuous treatment, and adjustment/covariate/instrument columns.
func testData(n int) *dataset.Frame {
	y := make([]float64, n)
	xb := make([]int64, n)
	xc := make([]float64, n)
	w := make([]float64, n)
	v := make([]float64, n)
	z := make([]int64, n)
	for i := 0; i < n; i++ {
		xb[i] = int64(i % 2)
		xc[i] = float64(i) * 0.5
		y[i] = float64(i)*1.5 + 0.25
		w[i] = float64(i%7) + 0.1
		v[i] = float64(i%5) + 0.3
		z[i] = int64(i % 3)
	}
	return dataset.MustNew(
		dataset.Float64Column("y", y),
		dataset.Int64Column("x", xb),
		dataset.Float64Column("xc", xc),
		dataset.Float64Column("w", w),
		dataset.Float64Column("v", v),
		dataset.Int64Column("z", z),
	)
}
