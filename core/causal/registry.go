package causal

import (
	"github.com/kilianp07/causalkit/core/factory"
)

// Registry maps tags to factory constructors.
type Registry = factory.Registry[Factory]

// NewRegistry registers every built-in factory and seals the result. The
// deep IV tags are registered even when no runtime is linked; constructing
// them then fails with *deepiv.UnavailableError and a single warning is
// logged here.
func NewRegistry(deps Deps) (*Registry, error) {
	d, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	reg := factory.NewRegistry[Factory]()

	reg.MustRegisterType(&DMLFactory{}, decoded(func(c DMLConfig) (Factory, error) {
		return NewDMLFactory(d, c), nil
	}))
	reg.MustRegisterType(&DRFactory{}, decoded(func(c DRConfig) (Factory, error) {
		return NewDRFactory(d, c), nil
	}))
	reg.MustRegisterType(&MetaLearnerFactory{}, decoded(func(c MetaLearnerConfig) (Factory, error) {
		return NewMetaLearnerFactory(d, c)
	}), "", "meta_leaner", "ml")
	reg.MustRegisterType(&CausalTreeFactory{}, decoded(func(struct{}) (Factory, error) {
		return NewCausalTreeFactory(d), nil
	}), "", "tree")
	reg.MustRegisterType(&ApproxBoundFactory{}, decoded(func(c ApproxBoundConfig) (Factory, error) {
		return NewApproxBoundFactory(d, c)
	}), "", "bound")
	reg.MustRegisterType(&IVFactory{}, decoded(func(c IVConfig) (Factory, error) {
		return NewIVFactory(d, c), nil
	}))
	reg.MustRegisterType(&DeepIVFactory{}, decoded(func(c DeepIVConfig) (Factory, error) {
		return NewDeepIVFactory(d, c)
	}), "", "div")

	if !d.DeepIV.Available() {
		d.Logger.Warnf("deep IV disabled: %v", d.DeepIV.Err())
	}
	reg.Seal()
	return reg, nil
}

// decoded turns a typed constructor into a factory.Factory reading its
// parameters from the raw configuration map.
func decoded[C any](build func(C) (Factory, error)) factory.Factory[Factory] {
	return func(conf map[string]any) (Factory, error) {
		var c C
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		f, err := build(c)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}
