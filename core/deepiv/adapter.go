package deepiv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/estimator"
)

// Adapter exposes a Network as an estimator.Estimator.
type Adapter struct {
	net Network
}

var _ estimator.Estimator = (*Adapter)(nil)

// NewAdapter wraps n.
func NewAdapter(n Network) *Adapter { return &Adapter{net: n} }

// Network returns the wrapped network.
func (a *Adapter) Network() Network { return a.net }

// Fit narrows float64 columns to float32 and fits the network.
func (a *Adapter) Fit(data *dataset.Frame, roles estimator.Roles) error {
	if data == nil {
		return errors.New("deep IV fit: nil data")
	}
	return a.net.Fit(data.Float64To32(), roles)
}

// Estimate narrows float64 columns when data is given, then converts the
// network output to a matrix.
func (a *Adapter) Estimate(data *dataset.Frame) (mat.Matrix, error) {
	if data != nil {
		data = data.Float64To32()
	}
	out, err := a.net.Estimate(data)
	if err != nil {
		return nil, err
	}
	return ToMatrix(out)
}

// ToMatrix converts a runtime result to a matrix. Vectors become a single
// column. Tensors of rank above two are rejected.
func ToMatrix(v any) (mat.Matrix, error) {
	switch x := v.(type) {
	case mat.Matrix:
		return x, nil
	case Tensor:
		return tensorToDense(x)
	case []float32:
		return column(widen(x)), nil
	case []float64:
		return column(append([]float64(nil), x...)), nil
	case nil:
		return nil, errors.New("deep IV estimate returned nil")
	default:
		return nil, fmt.Errorf("unsupported deep IV result %T", v)
	}
}

func tensorToDense(t Tensor) (*mat.Dense, error) {
	data := widen(t.Float32s())
	shape := t.Shape()
	rows, cols := 0, 1
	switch len(shape) {
	case 0:
		rows = len(data)
	case 1:
		rows = shape[0]
	case 2:
		rows, cols = shape[0], shape[1]
	default:
		return nil, fmt.Errorf("unsupported tensor rank %d", len(shape))
	}
	if rows*cols != len(data) || rows == 0 || cols == 0 {
		return nil, fmt.Errorf("tensor shape %v does not match %d values", shape, len(data))
	}
	return mat.NewDense(rows, cols, data), nil
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func column(v []float64) *mat.Dense {
	if len(v) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(v), 1, v)
}
