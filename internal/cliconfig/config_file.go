package cliconfig

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML layout of a config file.
type FileConfig struct {
	ServiceURL string `toml:"service_url"`
	Output     string `toml:"output"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected so that a misspelled key cannot silently fall
// back to the production endpoint.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("output", fc.Output, &cfg.OutputPath)
}
