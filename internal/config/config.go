// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for edcargo.
//
// Configuration lives in ~/.edcargo/config.toml with built-in defaults and
// environment variable overrides:
//   - EDCARGO_JOURNAL_DIR overrides journal_dir
//   - EDCARGO_FDEV_DIR overrides fdev_dir
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/edcargo-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete edcargo configuration.
type Config struct {
	// JournalDir is the directory the game writes journal files and
	// Cargo.json into.
	JournalDir string `toml:"journal_dir"`

	// FDevDir is the directory holding the FDevIDs reference tables
	// (rare_commodity.csv). Empty disables rare-commodity flair.
	FDevDir string `toml:"fdev_dir"`

	// Replay plays the newest journal file from its beginning at startup,
	// recovering missions accepted earlier in the session.
	Replay bool `toml:"replay"`

	// PollIntervalMS is the journal polling interval in milliseconds, used
	// when filesystem notification is unavailable.
	PollIntervalMS int `toml:"poll_interval_ms"`

	// Debug enables debug logging to the log file.
	Debug bool `toml:"debug"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		JournalDir:     DefaultJournalDir(),
		FDevDir:        "",
		Replay:         true,
		PollIntervalMS: 2000,
		Debug:          false,
	}
}

// DefaultJournalDir returns the game's stock journal location. The game
// itself only runs on Windows; on other platforms the same relative path
// under the home directory covers the common Proton and network-share
// setups.
func DefaultJournalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Saved Games", "Frontier Developments", "Elite Dangerous")
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the edcargo configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".edcargo"), nil
}

// Path returns the path to the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the path to the log file.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "edcargo.log"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	cfg.normalize()
	return cfg, nil
}

// LoadFile reads the config from an explicit path with no environment
// overrides. The file must exist.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config to its standard location atomically.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0o644)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EDCARGO_JOURNAL_DIR"); v != "" {
		cfg.JournalDir = v
	}
	if v := os.Getenv("EDCARGO_FDEV_DIR"); v != "" {
		cfg.FDevDir = v
	}
}

// normalize clamps values a hand-edited file may have broken.
func (c *Config) normalize() {
	if c.PollIntervalMS < 100 {
		c.PollIntervalMS = 100
	}
}

// RareCommodityFile returns the path of the rare-commodity reference table,
// or "" when no FDevIDs directory is configured.
func (c *Config) RareCommodityFile() string {
	if c.FDevDir == "" {
		return ""
	}
	return filepath.Join(c.FDevDir, "rare_commodity.csv")
}
