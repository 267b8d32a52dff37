// Package config loads the application configuration from an HCL file.
// A missing file is not an error: every field has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handnotes/internal/hand"
)

// Config holds user-tunable application settings
type Config struct {
	DataDir          string `hcl:"data_dir,optional"`
	DefaultTableSize int    `hcl:"default_table_size,optional"`
	DefaultBlind     string `hcl:"default_blind,optional"`
	AutoAdvanceMs    int    `hcl:"auto_advance_ms,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DataDir:          defaultDataDir(),
		DefaultTableSize: hand.DefaultTableSize,
		DefaultBlind:     hand.DefaultBlind.Name,
		AutoAdvanceMs:    600,
		LogLevel:         "info",
	}
}

// DefaultPath returns the conventional config file location
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "handnotes", "config.hcl")
	}
	return "config.hcl"
}

// Load reads the configuration from filename, applying defaults for
// anything unset. A nonexistent file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.DefaultTableSize == 0 {
		cfg.DefaultTableSize = defaults.DefaultTableSize
	}
	if cfg.DefaultTableSize < hand.MinTableSize || cfg.DefaultTableSize > hand.MaxTableSize {
		return nil, fmt.Errorf("config: default_table_size %d out of range", cfg.DefaultTableSize)
	}
	if cfg.DefaultBlind == "" {
		cfg.DefaultBlind = defaults.DefaultBlind
	}
	if _, ok := hand.BlindByName(cfg.DefaultBlind); !ok {
		return nil, fmt.Errorf("config: unknown default_blind %q", cfg.DefaultBlind)
	}
	if cfg.AutoAdvanceMs <= 0 {
		cfg.AutoAdvanceMs = defaults.AutoAdvanceMs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return &cfg, nil
}

// DatabasePath returns the SQLite file inside the data directory
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "handnotes.db")
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "handnotes")
	}
	return "."
}
