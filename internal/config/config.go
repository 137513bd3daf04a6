package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up in the working
// directory.
const FileName = ".prosefix.yaml"

// Config holds the user-tunable settings.
type Config struct {
	// OutputDir receives persisted tracking reports.
	OutputDir string `yaml:"output_dir"`
	// DefaultType is the document type assumed when none is given.
	DefaultType string `yaml:"default_type"`
	// SaveReports toggles report persistence for edit runs.
	SaveReports bool `yaml:"save_reports"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:   "./edits",
		DefaultType: "section",
		SaveReports: true,
	}
}

// Load reads the configuration file from dir, falling back to defaults when
// the file does not exist. Fields absent from the file keep their defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	if cfg.DefaultType == "" {
		cfg.DefaultType = Default().DefaultType
	}
	return cfg, nil
}
