package config

import (
	"fmt"
	"time"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Embedder EmbedderConfig `toml:"embedder"`
	Matching MatchingConfig `toml:"matching"`
	MCP      MCPConfig      `toml:"mcp"`
}

// DatabaseConfig contains catalog store settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// EmbedderConfig contains embedding service settings
type EmbedderConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// URL returns the full embedding service URL
func (e EmbedderConfig) URL() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// Timeout returns the request timeout as a duration
func (e EmbedderConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// MatchingConfig contains the tunable matching parameters. The fuzzy
// threshold and dislike weight are deliberately configuration, not
// constants.
type MatchingConfig struct {
	Threshold     int     `toml:"threshold"`
	TopK          int     `toml:"top_k"`
	DislikeWeight float64 `toml:"dislike_weight"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/progmatch/progmatch.db",
		},
		Embedder: EmbedderConfig{
			Host:           "http://localhost",
			Port:           8731,
			TimeoutSeconds: 120,
		},
		Matching: MatchingConfig{
			Threshold:     80,
			TopK:          10,
			DislikeWeight: 0.4,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
