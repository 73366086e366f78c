package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Values come from
// Defaults, overridden by an optional YAML file, overridden by
// environment variables.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

// ServerConfig defines the HTTP listener settings.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// CatalogConfig selects where the location reference is loaded from.
// Source is one of "builtin", "json", "sqlite", or "postgres".
type CatalogConfig struct {
	Source       string `yaml:"source"`
	Path         string `yaml:"path"`          // json source
	DatabasePath string `yaml:"database_path"` // sqlite source
	DatabaseURL  string `yaml:"database_url"`  // postgres source
}

// OptimizerConfig bounds the route search.
type OptimizerConfig struct {
	ExhaustiveEventLimit   int           `yaml:"exhaustive_event_limit"`
	TimeBudget             time.Duration `yaml:"time_budget"`
	MaxIterations          int           `yaml:"max_iterations"`
	MaxRefinePasses        int           `yaml:"max_refine_passes"`
	DefaultShipCapacitySCU float64       `yaml:"default_ship_capacity_scu"`
}

// Defaults returns a Config with sane defaults: builtin Stanton catalog,
// Constellation Taurus capacity, two-second search budget.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:       "builtin",
			Path:         "data/locations.json",
			DatabasePath: "data/catalog.db",
		},
		Optimizer: OptimizerConfig{
			ExhaustiveEventLimit:   10,
			TimeBudget:             2 * time.Second,
			MaxIterations:          5_000_000,
			MaxRefinePasses:        25,
			DefaultShipCapacitySCU: 168,
		},
	}
}

// Load reads the config file at path when it exists and applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		bytes, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(bytes, cfg); err != nil {
				return nil, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = Get("PORT", c.Server.Port)
	c.Catalog.Source = Get("CATALOG_SOURCE", c.Catalog.Source)
	c.Catalog.Path = Get("CATALOG_PATH", c.Catalog.Path)
	c.Catalog.DatabasePath = Get("CATALOG_DB_PATH", c.Catalog.DatabasePath)
	c.Catalog.DatabaseURL = Get("DATABASE_URL", c.Catalog.DatabaseURL)

	if v := os.Getenv("OPTIMIZER_TIME_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Optimizer.TimeBudget = d
		}
	}
	if v := os.Getenv("OPTIMIZER_EXHAUSTIVE_EVENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Optimizer.ExhaustiveEventLimit = n
		}
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
