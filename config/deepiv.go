package config

import (
	"fmt"
	"strings"
)

// DeepIVConfig selects the deep-learning runtime linked into the deep IV
// factory. An empty runtime leaves deep IV disabled.
type DeepIVConfig struct {
	Runtime string `json:"runtime"`
}

// Validate checks the runtime name shape. Whether the runtime is linked is
// only known when it is resolved.
func (c DeepIVConfig) Validate() error {
	if strings.ContainsAny(c.Runtime, " /") {
		return fmt.Errorf("deep_iv.runtime: invalid name %q", c.Runtime)
	}
	return nil
}
