package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Filter literals are fixed
// per-variant constants and are deliberately not configurable.
type Config struct {
	Addr         string `yaml:"addr"`
	DatabasePath string `yaml:"database_path"`
	OutputDir    string `yaml:"output_dir"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DatabasePath: "reports.db",
		OutputDir:    "exports",
	}
}

// Load reads settings from a YAML file over the defaults. An empty path
// means defaults only; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "reports.db"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "exports"
	}
	return cfg, nil
}
