// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Replay {
		t.Error("Replay should default to true")
	}
	if cfg.PollIntervalMS != 2000 {
		t.Errorf("PollIntervalMS = %d, want 2000", cfg.PollIntervalMS)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.FDevDir != "" {
		t.Errorf("FDevDir = %q, want empty", cfg.FDevDir)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `journal_dir = "/games/elite/journal"
fdev_dir = "/games/elite/fdevids"
replay = false
poll_interval_ms = 500
debug = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.JournalDir != "/games/elite/journal" {
		t.Errorf("JournalDir = %q", cfg.JournalDir)
	}
	if cfg.Replay {
		t.Error("Replay = true, want false")
	}
	if cfg.PollIntervalMS != 500 {
		t.Errorf("PollIntervalMS = %d, want 500", cfg.PollIntervalMS)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("debug = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Replay {
		t.Error("unset replay lost its default")
	}
	if cfg.PollIntervalMS != 2000 {
		t.Errorf("unset poll_interval_ms lost its default: %d", cfg.PollIntervalMS)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFile on a missing path should fail")
	}
}

func TestNormalizeClampsPollInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("poll_interval_ms = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PollIntervalMS != 100 {
		t.Errorf("PollIntervalMS = %d, want clamped to 100", cfg.PollIntervalMS)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no config file, defaults apply
	t.Setenv("EDCARGO_JOURNAL_DIR", "/custom/journal")
	t.Setenv("EDCARGO_FDEV_DIR", "/custom/fdevids")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.JournalDir != "/custom/journal" {
		t.Errorf("JournalDir = %q, want env override", cfg.JournalDir)
	}
	if cfg.FDevDir != "/custom/fdevids" {
		t.Errorf("FDevDir = %q, want env override", cfg.FDevDir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.JournalDir = "/saved/journal"
	cfg.PollIntervalMS = 750
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.JournalDir != "/saved/journal" || loaded.PollIntervalMS != 750 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestRareCommodityFile(t *testing.T) {
	cfg := Default()
	if got := cfg.RareCommodityFile(); got != "" {
		t.Errorf("RareCommodityFile with no FDevDir = %q, want empty", got)
	}

	cfg.FDevDir = "/data/fdevids"
	want := filepath.Join("/data/fdevids", "rare_commodity.csv")
	if got := cfg.RareCommodityFile(); got != want {
		t.Errorf("RareCommodityFile = %q, want %q", got, want)
	}
}
