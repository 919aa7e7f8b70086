package plugins

import (
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/infra/blueprint"
)

func init() {
	RegisterRuntime("blueprint", func() (deepiv.Runtime, error) {
		return blueprint.Runtime{}, nil
	})
}
