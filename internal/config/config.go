// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatcmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatcmd configuration.
type Config struct {
	// Engine settings (prefixes, command activation)
	Engine EngineConfig `toml:"engine"`

	// History settings (invocation log)
	History HistoryConfig `toml:"history"`

	// REPL settings
	REPL REPLConfig `toml:"repl"`
}

// EngineConfig configures the command engine.
type EngineConfig struct {
	// Prefixes are the command prefixes, in match-priority order.
	Prefixes []string `toml:"prefixes"`

	// DisabledCommands lists built-in commands to register deactivated.
	DisabledCommands []string `toml:"disabled_commands"`
}

// HistoryConfig configures the invocation history store.
type HistoryConfig struct {
	// Enabled turns invocation logging on.
	Enabled bool `toml:"enabled"`

	// Path is the SQLite database path (empty = <config dir>/history.db).
	Path string `toml:"path"`

	// Limit is the default number of rows shown by the history command.
	Limit int `toml:"limit"`
}

// REPLConfig configures the interactive REPL.
type REPLConfig struct {
	// Prompt is the input prompt string.
	Prompt string `toml:"prompt"`

	// Color enables styled output.
	Color bool `toml:"color"`

	// FloodRate is the sustained line rate allowed, in lines per second.
	FloodRate float64 `toml:"flood_rate"`

	// FloodBurst is the burst size allowed above the sustained rate.
	FloodBurst int `toml:"flood_burst"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Prefixes: []string{"!"},
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
		REPL: REPLConfig{
			Prompt:     "> ",
			Color:      true,
			FloodRate:  5,
			FloodBurst: 10,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the chatcmd configuration directory (~/.chatcmd).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chatcmd"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration from the default location, falling back to
// defaults when no file exists.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a TOML configuration file. Fields absent from the file
// keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path as TOML.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the engine cannot work with.
func (c *Config) Validate() error {
	for i, p := range c.Engine.Prefixes {
		if p == "" {
			return fmt.Errorf("engine.prefixes[%d] must not be empty", i)
		}
	}
	if c.REPL.FloodRate <= 0 {
		return fmt.Errorf("repl.flood_rate must be positive, got %v", c.REPL.FloodRate)
	}
	if c.REPL.FloodBurst < 1 {
		return fmt.Errorf("repl.flood_burst must be at least 1, got %d", c.REPL.FloodBurst)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}
	return nil
}

// HistoryPath resolves the history database path, applying the default
// location when unset.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
