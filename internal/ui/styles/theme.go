// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Section headers and capacity summaries
	SectionTitle lipgloss.Style
	Summary      lipgloss.Style
	ApproxMark   lipgloss.Style
	Placeholder  lipgloss.Style

	// Manifest rows
	RowCount         lipgloss.Style
	RowName          lipgloss.Style
	NeedSuffix       lipgloss.Style
	GlyphFree        lipgloss.Style
	GlyphStolen      lipgloss.Style
	GlyphMission     lipgloss.Style
	GlyphMissionSton lipgloss.Style

	// Chrome
	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// NewTheme builds the theme for the current terminal.
func NewTheme() *Theme {
	profile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}

	t.SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.Summary = lipgloss.NewStyle().Foreground(TextPrimary)
	t.ApproxMark = lipgloss.NewStyle().Foreground(Amber)
	t.Placeholder = lipgloss.NewStyle().Foreground(TextMuted)

	t.RowCount = lipgloss.NewStyle().Foreground(TextSecondary)
	t.RowName = lipgloss.NewStyle().Foreground(TextPrimary)
	t.NeedSuffix = lipgloss.NewStyle().Foreground(Amber)
	t.GlyphFree = lipgloss.NewStyle().Foreground(Emerald)
	t.GlyphStolen = lipgloss.NewStyle().Foreground(Rose)
	t.GlyphMission = lipgloss.NewStyle().Foreground(Amber)
	t.GlyphMissionSton = lipgloss.NewStyle().Foreground(Rose).Bold(true)

	t.StatusBar = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Error = lipgloss.NewStyle().Foreground(Rose)
	t.Help = lipgloss.NewStyle().Foreground(TextMuted)

	return t
}
