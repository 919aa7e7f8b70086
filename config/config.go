package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/causalkit/core/metrics"
)

// EnvPrefix marks environment variables overriding file settings.
// CAUSAL_ESTIMATOR__OUTCOME=y sets estimator.outcome.
const EnvPrefix = "CAUSAL_"

type Config struct {
	Estimator EstimatorConfig `json:"estimator"`
	Dataset   DatasetConfig   `json:"dataset"`
	DeepIV    DeepIVConfig    `json:"deep_iv"`
	Metrics   metrics.Config  `json:"metrics"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Estimator.SetDefaults()
	if err := cfg.Estimator.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.DeepIV.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
