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

	"github.com/tkerdo/portflow/core/metrics"
)

// Config is the root configuration of the planning service.
type Config struct {
	Engine  EngineConfig   `json:"engine"`
	Metrics metrics.Config `json:"metrics"`
}

// Default returns a Config with every default applied, usable without a
// configuration file.
func Default() *Config {
	var cfg Config
	cfg.Engine.SetDefaults()
	return &cfg
}

// Load reads the configuration file (yaml or json) and applies PF_
// environment overrides.
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
	// Optional environment overrides: PF_ENGINE__ITERATIONS=200 and so on.
	// The callback emits dot paths, so the provider delimiter must be "."
	// for the keys to merge over the file-loaded sections.
	if err := k.Load(env.Provider("PF_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Engine.SetDefaults()
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
