// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/edcargo-tui/internal/ui/styles"
	"github.com/jeranaias/edcargo-tui/internal/util"
)

// =============================================================================
// CAPACITY SUMMARIES
// =============================================================================

// Summary is the occupied/capacity line above a manifest panel.
type Summary struct {
	Title    string
	Occupied int
	// Capacity is ignored when Known is false; the panel then renders the
	// "???" placeholder instead of a number.
	Capacity int
	Known    bool
	// Guessed marks a capacity inferred from occupancy rather than
	// reported by the game; it renders with an approximation marker.
	Guessed bool
}

// Text renders the plain summary string, e.g.
//
//	Ship Manifest: 42 / 64 [22]
//	Ship Manifest: 42 / 42? [0]
//	SRV Manifest: 2 / ???
func (s Summary) Text() string {
	if !s.Known {
		return s.Title + ": " + strconv.Itoa(s.Occupied) + " / ???"
	}
	remaining := s.Capacity - s.Occupied
	mark := ""
	if s.Guessed {
		mark = "?"
	}
	return s.Title + ": " + strconv.Itoa(s.Occupied) + " / " +
		strconv.Itoa(s.Capacity) + mark + " [" + strconv.Itoa(remaining) + "]"
}

// =============================================================================
// MANIFEST PANEL
// =============================================================================

// Panel renders one vessel's manifest section: a summary line followed by
// aligned cargo rows.
type Panel struct {
	theme *styles.Theme
}

// NewPanel creates a manifest panel using the given theme.
func NewPanel(theme *styles.Theme) *Panel {
	return &Panel{theme: theme}
}

// View renders the summary and rows. An empty row list renders just the
// summary; an empty summary title renders nothing.
func (p *Panel) View(summary Summary, rows []Row, width int) string {
	if summary.Title == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.theme.SectionTitle.Render(summary.Text()))

	countWidth := 0
	for _, r := range rows {
		if w := len(strconv.Itoa(r.Count)); w > countWidth {
			countWidth = w
		}
	}

	nameWidth := width - countWidth - 4
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(p.theme.RowCount.Render(util.PadLeft(strconv.Itoa(r.Count), countWidth)))
		b.WriteString(" ")
		b.WriteString(p.glyphStyle(r.Kind).Render(r.Kind.Glyph()))
		b.WriteString(" ")

		name := r.Name
		if nameWidth > 0 {
			name = util.TruncateWidth(name, nameWidth)
		}
		b.WriteString(p.theme.RowName.Render(name))
		if suffix := r.Suffix(); suffix != "" {
			b.WriteString(" ")
			b.WriteString(p.theme.NeedSuffix.Render(suffix))
		}
	}
	return b.String()
}

func (p *Panel) glyphStyle(k RowKind) lipgloss.Style {
	switch k {
	case RowStolen:
		return p.theme.GlyphStolen
	case RowMission:
		return p.theme.GlyphMission
	case RowMissionStolen:
		return p.theme.GlyphMissionSton
	default:
		return p.theme.GlyphFree
	}
}
