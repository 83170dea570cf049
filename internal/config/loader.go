package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config is fine: run on defaults.
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if c.Embedder.Host == "" {
		errs = append(errs, errors.New("embedder.host is required"))
	}
	if c.Embedder.Port < 1 || c.Embedder.Port > 65535 {
		errs = append(errs, errors.New("embedder.port must be between 1 and 65535"))
	}
	if c.Embedder.TimeoutSeconds < 1 {
		errs = append(errs, errors.New("embedder.timeout_seconds must be at least 1"))
	}

	if c.Matching.Threshold < 0 || c.Matching.Threshold > 100 {
		errs = append(errs, errors.New("matching.threshold must be between 0 and 100"))
	}
	if c.Matching.TopK < 1 {
		errs = append(errs, errors.New("matching.top_k must be at least 1"))
	}
	if c.Matching.DislikeWeight < 0 || c.Matching.DislikeWeight > 1 {
		errs = append(errs, errors.New("matching.dislike_weight must be between 0 and 1"))
	}

	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the catalog store
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
