package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BROLFETCH_*).
// These override file config but are overridden by flags (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("service-url", os.Getenv("BROLFETCH_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("output", os.Getenv("BROLFETCH_OUTPUT"), &cfg.OutputPath)
}
