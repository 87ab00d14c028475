package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name:       "applies all values",
			fileConfig: FileConfig{ServiceURL: "http://staging/wfs", Output: "out.xml"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   Config{ServiceURL: "http://staging/wfs", OutputPath: "out.xml"},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{ServiceURL: "http://staging/wfs", Output: "out.xml"},
			changed:    map[string]bool{"service-url": true},
			initial:    Config{ServiceURL: "http://flag/wfs", OutputPath: "response.txt"},
			expected:   Config{ServiceURL: "http://flag/wfs", OutputPath: "out.xml"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "valid.toml")
		content := "service_url = \"http://localhost:9000/wfs\"\noutput = \"/tmp/r.txt\"\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		fc, err := LoadFileConfig(path)
		if err != nil {
			t.Fatalf("LoadFileConfig: %v", err)
		}
		if fc.ServiceURL != "http://localhost:9000/wfs" || fc.Output != "/tmp/r.txt" {
			t.Errorf("got %+v", fc)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.toml")
		if err := os.WriteFile(path, []byte("serviceurl = \"http://typo\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFileConfig(path); err == nil {
			t.Error("expected error for unknown key")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		if err := os.WriteFile(path, []byte("service_url = \n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFileConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFileConfig(filepath.Join(dir, "nope.toml")); !os.IsNotExist(err) {
			t.Errorf("error = %v, want not-exist", err)
		}
	})
}
