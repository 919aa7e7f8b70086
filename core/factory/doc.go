// Package factory provides the tag registry used to look up estimator
// factories by name and instantiate them from configuration.
//
// Entries are keyed by a tag. A tag is either given explicitly or derived
// from the Go type of a prototype value: the "Factory" suffix is stripped and
// the remainder converted to snake_case, so DMLFactory registers as "dml" and
// CausalTreeFactory as "causal_tree". A registry is filled by one
// initialisation routine and then sealed; lookups after that never observe a
// change.
//
// Example usage:
//
//	reg := factory.NewRegistry[Builder]()
//	reg.MustRegisterType(&DMLFactory{}, newDML)        // "dml"
//	reg.MustRegisterType(&MetaLeanerFactory{}, newML, "", "ml") // "meta_leaner" and "ml"
//	reg.Seal()
//	b, err := reg.Create(factory.ModuleConfig{Type: "ml", Conf: map[string]any{"leaner": "x"}})
package factory
