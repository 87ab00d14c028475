package cliconfig

import (
	"fmt"
	"net/url"

	"github.com/bft-labs/brolfetch/internal/adapters/fs"
	"github.com/bft-labs/brolfetch/internal/domain"
)

// DefaultServiceURL is the WFS endpoint queried when nothing overrides it.
const DefaultServiceURL = domain.DefaultEndpoint

// DefaultOutputPath is the response file, relative to the working directory.
const DefaultOutputPath = fs.DefaultFileName

// Config holds CLI configuration for brolfetch.
type Config struct {
	ServiceURL string
	OutputPath string
}

// DefaultConfig returns a Config that reproduces the fixed query.
func DefaultConfig() Config {
	return Config{
		ServiceURL: DefaultServiceURL,
		OutputPath: DefaultOutputPath,
	}
}

// Validate checks the configuration for errors and fills empty fields
// with defaults.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}

	u, err := url.Parse(c.ServiceURL)
	if err != nil {
		return fmt.Errorf("%w: service-url: %v", domain.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: service-url must be http or https, got %q", domain.ErrInvalidConfig, c.ServiceURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: service-url has no host", domain.ErrInvalidConfig)
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
