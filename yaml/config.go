// Package yaml loads the pipeline configuration file.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline's file locations and server settings. Every
// field has a working default so a config file is optional.
type Config struct {
	// InputDir is the root of the per-page scan records.
	InputDir string `yaml:"input_dir"`

	// OutputDir is where the generated site is written.
	OutputDir string `yaml:"output_dir"`

	// EntityMappingPath, TypeMappingPath, and AnalysesPath locate the
	// externally-produced mapping files. Missing files are not errors.
	EntityMappingPath string `yaml:"entity_mapping_path"`
	TypeMappingPath   string `yaml:"type_mapping_path"`
	AnalysesPath      string `yaml:"analyses_path"`

	// DBPath is the SQLite export target.
	DBPath string `yaml:"db_path"`

	// Addr is the preview server's listen address.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		InputDir:          "scans",
		OutputDir:         "site",
		EntityMappingPath: "entity_mappings.json",
		TypeMappingPath:   "document_type_mappings.json",
		AnalysesPath:      "analyses.json",
		DBPath:            "corpus.db",
		Addr:              ":8080",
	}
}

// LoadConfig reads a YAML config from path, filling unset fields with
// defaults. An empty path yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if file.InputDir != "" {
		config.InputDir = file.InputDir
	}
	if file.OutputDir != "" {
		config.OutputDir = file.OutputDir
	}
	if file.EntityMappingPath != "" {
		config.EntityMappingPath = file.EntityMappingPath
	}
	if file.TypeMappingPath != "" {
		config.TypeMappingPath = file.TypeMappingPath
	}
	if file.AnalysesPath != "" {
		config.AnalysesPath = file.AnalysesPath
	}
	if file.DBPath != "" {
		config.DBPath = file.DBPath
	}
	if file.Addr != "" {
		config.Addr = file.Addr
	}

	return config, nil
}
