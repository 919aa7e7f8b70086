package deepiv

import (
	"errors"
	"fmt"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/estimator"
)

// ErrRuntimeUnavailable is the cause recorded when no runtime is linked.
var ErrRuntimeUnavailable = errors.New("deep-learning runtime not available")

// Tensor is a dense single-precision array owned by the runtime.
type Tensor interface {
	Shape() []int
	Float32s() []float32
}

// Params configures a deep IV network.
type Params struct {
	XNet              string `json:"x_net,omitempty"`
	YNet              string `json:"y_net,omitempty"`
	XHiddenD          *int   `json:"x_hidden_d,omitempty"`
	YHiddenD          *int   `json:"y_hidden_d,omitempty"`
	NumGaussian       int    `json:"num_gaussian"`
	DiscreteOutcome   bool   `json:"is_discrete_outcome"`
	DiscreteTreatment bool   `json:"is_discrete_treatment"`
	RandomState       *int64 `json:"random_state,omitempty"`
}

// Network is a deep IV model as exposed by the runtime. Estimate may return
// a Tensor, a []float32, a []float64 or a gonum matrix.
type Network interface {
	Fit(data *dataset.Frame, roles estimator.Roles) error
	Estimate(data *dataset.Frame) (any, error)
}

// Runtime builds deep IV networks.
type Runtime interface {
	Name() string
	NewDeepIV(p Params) (Network, error)
}

// UnavailableError is returned when the deep IV factory is constructed
// without a runtime.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("deep IV unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// Capability is the resolved availability of a runtime.
type Capability struct {
	runtime Runtime
	err     error
}

// Resolve records rt as available; a nil runtime yields an unavailable
// capability.
func Resolve(rt Runtime) Capability {
	if rt == nil {
		return Capability{err: ErrRuntimeUnavailable}
	}
	return Capability{runtime: rt}
}

// Detect runs probe once and records its outcome. A probe error becomes the
// cause reported by Runtime.
func Detect(probe func() (Runtime, error)) Capability {
	if probe == nil {
		return Resolve(nil)
	}
	rt, err := probe()
	if err != nil {
		return Capability{err: fmt.Errorf("%w: %w", ErrRuntimeUnavailable, err)}
	}
	return Resolve(rt)
}

// Available reports whether a runtime is linked.
func (c Capability) Available() bool { return c.runtime != nil }

// Err returns the reason the runtime is unavailable, nil otherwise.
func (c Capability) Err() error {
	if c.runtime != nil {
		return nil
	}
	if c.err == nil {
		return ErrRuntimeUnavailable
	}
	return c.err
}

// Runtime returns the linked runtime or an *UnavailableError.
func (c Capability) Runtime() (Runtime, error) {
	if c.runtime == nil {
		return nil, &UnavailableError{Cause: c.Err()}
	}
	return c.runtime, nil
}
