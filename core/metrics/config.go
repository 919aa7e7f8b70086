package metrics

import "github.com/kilianp07/causalkit/core/factory"

// Config defines the recorders to instantiate and where to dump the
// Prometheus text exposition after a CLI run.
type Config struct {
	Recorders []factory.ModuleConfig `json:"recorders"`
	Textfile  string                 `json:"textfile"`
}
