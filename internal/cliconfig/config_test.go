package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/brolfetch/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServiceURL != "https://beheer-risicolocaties.ovam.be/geoserver/BROL/wfs" {
		t.Errorf("ServiceURL = %v", cfg.ServiceURL)
	}
	if cfg.OutputPath != "response.txt" {
		t.Errorf("OutputPath = %v, want response.txt", cfg.OutputPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name           string
		config         Config
		wantErr        bool
		wantServiceURL string
		wantOutput     string
	}{
		{
			name:   "stand-in server",
			config: Config{ServiceURL: "http://127.0.0.1:8080/wfs", OutputPath: "/tmp/out.txt"},
		},
		{
			name:           "empty fields take defaults",
			config:         Config{},
			wantServiceURL: DefaultServiceURL,
			wantOutput:     DefaultOutputPath,
		},
		{
			name:           "trailing slash is kept",
			config:         Config{ServiceURL: "http://localhost/geoserver/wfs/"},
			wantServiceURL: "http://localhost/geoserver/wfs/",
		},
		{
			name:    "unsupported scheme",
			config:  Config{ServiceURL: "ftp://example.com/wfs"},
			wantErr: true,
		},
		{
			name:    "missing host",
			config:  Config{ServiceURL: "http:///wfs"},
			wantErr: true,
		},
		{
			name:    "unparseable url",
			config:  Config{ServiceURL: "http://[::1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			if tt.wantServiceURL != "" && tt.config.ServiceURL != tt.wantServiceURL {
				t.Errorf("ServiceURL = %v, want %v", tt.config.ServiceURL, tt.wantServiceURL)
			}
			if tt.wantOutput != "" && tt.config.OutputPath != tt.wantOutput {
				t.Errorf("OutputPath = %v, want %v", tt.config.OutputPath, tt.wantOutput)
			}
		})
	}
}
