// Package config loads and validates the simulation configuration from YAML
// or JSON files with optional environment overrides.
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
)

// Config aggregates every section of the simulation configuration.
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Building   BuildingConfig   `json:"building"`
	Fleet      FleetConfig      `json:"fleet"`
	Energy     EnergyConfig     `json:"energy"`
	Arrivals   ArrivalsConfig   `json:"arrivals"`
	Metrics    MetricsConfig    `json:"metrics"`
}

// Load reads the configuration file, applies LS_ environment overrides,
// fills defaults and validates every section. Validation failures are fatal:
// a broken configuration must be rejected before the simulation starts.
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
	// Optional environment overrides, e.g. LS_BUILDING__FLOORS=12.
	if err := k.Load(env.Provider("LS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ls_")
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

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Simulation.SetDefaults()
	c.Fleet.SetDefaults()
	c.Energy.SetDefaults()
	c.Arrivals.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every section plus the cross-section constraints.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if err := c.Building.Validate(); err != nil {
		return err
	}
	if err := c.Fleet.Validate(); err != nil {
		return err
	}
	if err := c.Energy.Validate(); err != nil {
		return err
	}
	if err := c.Arrivals.Validate(); err != nil {
		return err
	}
	if c.Fleet.StartFloor < 0 || c.Fleet.StartFloor >= c.Building.Floors {
		return fmt.Errorf("fleet start floor %d outside building [0,%d)", c.Fleet.StartFloor, c.Building.Floors)
	}
	return nil
}
