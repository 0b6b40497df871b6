package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/fleetmock/core/factory"
	"github.com/kilianp07/fleetmock/core/metrics"
)

// EnvPrefix prefixes environment overrides, e.g.
// FLEETMOCK_GENERATOR__FLEET_SIZE=12.
const EnvPrefix = "FLEETMOCK_"

type Config struct {
	Generator GeneratorConfig        `json:"generator"`
	Views     []factory.ModuleConfig `json:"views"`
	Metrics   metrics.Config         `json:"metrics"`
	RunLog    RunLogConfig           `json:"runlog"`
	Report    ReportConfig           `json:"report"`
	LogLevel  string                 `json:"log_level"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults fills every section's optional fields.
func (c *Config) SetDefaults() {
	c.Generator.SetDefaults()
	c.RunLog.SetDefaults()
	c.Report.SetDefaults()
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Generator.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("generator: %w", err))
	}
	if err := c.RunLog.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("runlog: %w", err))
	}
	for i, v := range c.Views {
		if v.Type == "" {
			errs = append(errs, fmt.Errorf("views[%d]: type is required", i))
		}
	}
	return errors.Join(errs...)
}

// Load reads the configuration file at path (YAML or JSON by extension) and
// applies FLEETMOCK_ environment overrides. An empty path loads only the
// environment on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
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
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
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
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
