package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/sentimeter/internal/config"
)

func TestConfigInitAndValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"full", nil},
		{"minimal", []string{"--minimal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "sentimeter.yaml")

			args := append([]string{"--no-emoji", "config", "init", "--path", path}, tt.args...)
			out, err := executeCommand(t, "", args...)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !strings.Contains(out, "Configuration file created at: "+path) {
				t.Errorf("Expected creation message, got %q", out)
			}

			out, err = executeCommand(t, "", "--no-emoji", "--config", path, "config", "validate")
			if err != nil {
				t.Fatalf("Expected generated config to validate, got %v", err)
			}
			if !strings.Contains(out, "Configuration is valid") {
				t.Errorf("Expected valid message, got %q", out)
			}
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := writeConfig(t, "version: \"1.0\"\n")

	_, err := executeCommand(t, "", "config", "init", "--path", path)
	if err == nil {
		t.Fatal("Expected error for existing config file")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected already exists error, got %v", err)
	}

	if _, err := executeCommand(t, "", "config", "init", "--path", path, "--force"); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "samples:") {
		t.Errorf("Expected sample config after --force, got %q", string(data))
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	path := writeConfig(t, "output:\n  default_format: xml\n")

	out, err := executeCommand(t, "", "--no-emoji", "--config", path, "config", "validate")
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(out, "Configuration validation failed") {
		t.Errorf("Expected failure message, got %q", out)
	}
	if !strings.Contains(out, "invalid output format") {
		t.Errorf("Expected reason in output, got %q", out)
	}
}

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, "ui:\n  theme: minimal\nsamples:\n  delay: 250ms\n")

	out, err := executeCommand(t, "", "--config", path, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Expected JSON config, got %q: %v", out, err)
	}
	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.Samples.Delay.Milliseconds() != 250 {
		t.Errorf("Expected delay 250ms, got %s", cfg.Samples.Delay)
	}

	out, err = executeCommand(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "theme: minimal") {
		t.Errorf("Expected YAML output, got %q", out)
	}

	if _, err := executeCommand(t, "", "--config", path, "config", "show", "--format", "toml"); err == nil {
		t.Error("Expected error for unsupported show format")
	}
}

func TestConfigPath(t *testing.T) {
	out, err := executeCommand(t, "", "--no-emoji", "config", "path")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, path := range config.GetConfigPaths() {
		if !strings.Contains(out, path) {
			t.Errorf("Expected %s in output", path)
		}
	}
	if !strings.Contains(out, config.EnvPrefix) {
		t.Errorf("Expected env prefix hint, got %q", out)
	}
}
