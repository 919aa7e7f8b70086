package metrics

import "github.com/kilianp07/causalkit/core/factory"

var recorderRegistry = factory.NewRegistry[BuildRecorder]()

// RegisterRecorder adds a recorder factory identified by name.
func RegisterRecorder(name string, f factory.Factory[BuildRecorder]) error {
	return recorderRegistry.Register(name, f)
}

// NewRecorder creates a BuildRecorder from the provided configuration.
func NewRecorder(cfgs []factory.ModuleConfig) (BuildRecorder, error) {
	if len(cfgs) == 0 {
		return NopRecorder{}, nil
	}
	if len(cfgs) == 1 {
		return recorderRegistry.Create(cfgs[0])
	}
	recs := make([]BuildRecorder, len(cfgs))
	for i, c := range cfgs {
		r, err := recorderRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		recs[i] = r
	}
	return NewMultiRecorder(recs...), nil
}
