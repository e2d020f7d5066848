// edcargo - a terminal cargo manifest companion for Elite Dangerous.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jeranaias/edcargo-tui/internal/config"
	"github.com/jeranaias/edcargo-tui/internal/journal"
	"github.com/jeranaias/edcargo-tui/internal/manifest"
	"github.com/jeranaias/edcargo-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	journalDir := pflag.String("journal-dir", "", "journal directory (overrides config)")
	fdevDir := pflag.String("fdev-dir", "", "FDevIDs data directory (overrides config)")
	noReplay := pflag.Bool("no-replay", false, "do not replay the current journal file at startup")
	showVersion := pflag.BoolP("version", "v", false, "print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("edcargo %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *journalDir != "" {
		cfg.JournalDir = *journalDir
	}
	if *fdevDir != "" {
		cfg.FDevDir = *fdevDir
	}
	if *noReplay {
		cfg.Replay = false
	}

	if cfg.JournalDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no journal directory; set journal_dir in config or pass --journal-dir")
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logging goes to a file.
	var logger *log.Logger
	if cfg.Debug {
		if path, err := config.LogPath(); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defer f.Close()
				logger = log.New(f, "", log.LstdFlags)
			}
		}
	}

	session := manifest.NewSession(cfg.JournalDir, cfg.RareCommodityFile(), logger)

	tailer := journal.NewTailer(cfg.JournalDir, cfg.Replay,
		time.Duration(cfg.PollIntervalMS)*time.Millisecond)
	if err := tailer.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: watch %s: %v\n", cfg.JournalDir, err)
		os.Exit(1)
	}
	defer tailer.Close()

	p := tea.NewProgram(ui.NewModel(session, tailer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
