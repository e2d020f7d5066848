// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/jeranaias/edcargo-tui/internal/manifest"
)

// =============================================================================
// ROW LAYOUT
// =============================================================================

// RowKind categorizes a manifest row for glyph and color selection.
type RowKind int

const (
	// RowFree is unallocated legitimate stock.
	RowFree RowKind = iota
	// RowStolen is unallocated stolen stock.
	RowStolen
	// RowMission is cargo held for, or still needed by, a mission.
	RowMission
	// RowMissionStolen is stolen cargo held for, or needed by, a mission.
	RowMissionStolen
)

// Glyph returns the single-column marker rendered between count and name.
func (k RowKind) Glyph() string {
	switch k {
	case RowFree:
		return "–"
	case RowStolen:
		return "!"
	case RowMission:
		return "◆"
	case RowMissionStolen:
		return "◈"
	default:
		return "?"
	}
}

// Row is one display line of a manifest panel.
type Row struct {
	Count int
	Kind  RowKind
	Name  string
	// Need is the mission's outstanding requirement; nil when the units are
	// mission cargo with no tracked requirement (shown as "#?").
	Need *int
	// HasNeed marks mission rows, which may carry a zero or unknown need.
	HasNeed bool
}

// Suffix renders the bracketed annotation after the name, or "".
func (r Row) Suffix() string {
	if r.Kind != RowMission && r.Kind != RowMissionStolen {
		return ""
	}
	if r.Need == nil {
		return "[#?]"
	}
	if *r.Need > 0 {
		return "[need " + strconv.Itoa(*r.Need) + "]"
	}
	return ""
}

// Rows flattens a reconciled manifest into display rows: for each commodity
// the mission rows come first, in mission tracking order, then the free row
// and the stolen row. Zero-count rows only appear for missions, so the
// panel can show what is still needed of a commodity not yet held.
func Rows(m manifest.Manifest) []Row {
	var rows []Row
	for _, e := range m.Entries {
		for _, a := range e.Missions {
			if a.CountNeed != nil {
				rows = append(rows, Row{Count: a.Count, Kind: RowMission, Name: e.DisplayName, Need: a.CountNeed, HasNeed: true})
			} else if a.Count > 0 {
				rows = append(rows, Row{Count: a.Count, Kind: RowMission, Name: e.DisplayName})
			}
			if a.StolenNeed != nil {
				rows = append(rows, Row{Count: a.Stolen, Kind: RowMissionStolen, Name: e.DisplayName, Need: a.StolenNeed, HasNeed: true})
			} else if a.Stolen > 0 {
				rows = append(rows, Row{Count: a.Stolen, Kind: RowMissionStolen, Name: e.DisplayName})
			}
		}
		if e.Count > 0 {
			rows = append(rows, Row{Count: e.Count, Kind: RowFree, Name: e.DisplayName})
		}
		if e.Stolen > 0 {
			rows = append(rows, Row{Count: e.Stolen, Kind: RowStolen, Name: e.DisplayName})
		}
	}
	return rows
}
