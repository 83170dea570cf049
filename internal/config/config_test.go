package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Embedder.Port != 8731 {
		t.Errorf("Embedder.Port = %d, want 8731", cfg.Embedder.Port)
	}
	if cfg.Embedder.URL() != "http://localhost:8731" {
		t.Errorf("Embedder.URL() = %q", cfg.Embedder.URL())
	}
	if cfg.Embedder.Timeout() != 120*time.Second {
		t.Errorf("Embedder.Timeout() = %v", cfg.Embedder.Timeout())
	}
	if cfg.Matching.Threshold != 80 {
		t.Errorf("Matching.Threshold = %d, want 80", cfg.Matching.Threshold)
	}
	if cfg.Matching.TopK != 10 {
		t.Errorf("Matching.TopK = %d, want 10", cfg.Matching.TopK)
	}
	if cfg.Matching.DislikeWeight != 0.4 {
		t.Errorf("Matching.DislikeWeight = %v, want 0.4", cfg.Matching.DislikeWeight)
	}
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("MCP.Transport = %q, want stdio", cfg.MCP.Transport)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Embedder.Port = 70000 },
			wantErr: "embedder.port",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Embedder.TimeoutSeconds = 0 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "threshold above scale",
			mutate:  func(c *Config) { c.Matching.Threshold = 101 },
			wantErr: "matching.threshold",
		},
		{
			name:    "top_k below one",
			mutate:  func(c *Config) { c.Matching.TopK = 0 },
			wantErr: "matching.top_k",
		},
		{
			name:    "dislike weight above one",
			mutate:  func(c *Config) { c.Matching.DislikeWeight = 1.5 },
			wantErr: "dislike_weight",
		},
		{
			name:    "unsupported transport",
			mutate:  func(c *Config) { c.MCP.Transport = "http" },
			wantErr: "mcp.transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Matching.Threshold != 80 {
		t.Errorf("Threshold = %d, want default 80", cfg.Matching.Threshold)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[matching]
threshold = 65
top_k = 3

[embedder]
port = 9000
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Matching.Threshold != 65 {
		t.Errorf("Threshold = %d, want 65", cfg.Matching.Threshold)
	}
	if cfg.Matching.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.Matching.TopK)
	}
	if cfg.Embedder.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Embedder.Port)
	}
	// Untouched sections keep their defaults.
	if cfg.Matching.DislikeWeight != 0.4 {
		t.Errorf("DislikeWeight = %v, want default 0.4", cfg.Matching.DislikeWeight)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[matching]
threshold = 200
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := expandPath("~/data/progmatch.db")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	if got != filepath.Join(home, "data/progmatch.db") {
		t.Errorf("expandPath() = %q", got)
	}

	got, err = expandPath("/absolute/path.db")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	if got != "/absolute/path.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
