// Package plugins holds the named deep-learning runtimes the CLI can link
// into the deep IV factory. Runtimes register themselves from init; the
// configured name is resolved once at start-up.
package plugins

import (
	"fmt"

	"github.com/kilianp07/causalkit/core/deepiv"
)

// RuntimeProbe attempts to bring up a runtime. A failing probe leaves deep IV
// unavailable and its error is reported when the factory is constructed.
type RuntimeProbe func() (deepiv.Runtime, error)

var runtimes = map[string]RuntimeProbe{}

// RegisterRuntime adds a runtime probe under name. It panics on duplicates.
func RegisterRuntime(name string, p RuntimeProbe) {
	if _, ok := runtimes[name]; ok {
		panic(fmt.Sprintf("runtime %q already registered", name))
	}
	runtimes[name] = p
}

// ResolveRuntime returns the deep IV capability for the named runtime. An
// empty name means no runtime.
func ResolveRuntime(name string) deepiv.Capability {
	if name == "" {
		return deepiv.Resolve(nil)
	}
	probe, ok := runtimes[name]
	if !ok {
		return deepiv.Detect(func() (deepiv.Runtime, error) {
			return nil, fmt.Errorf("runtime %q is not linked into this binary", name)
		})
	}
	return deepiv.Detect(probe)
}
