// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/edcargo-tui/internal/journal"
)

// =============================================================================
// RECONCILED MANIFEST
// =============================================================================

// RareFlair is appended to the display name of rare commodities.
const RareFlair = " ✦"

// MissionAllocation is the slice of a commodity earmarked for one mission,
// plus how much that mission still needs. Exactly one of CountNeed and
// StolenNeed is set, matching the side of the pool the mission draws from;
// the other side is nil.
type MissionAllocation struct {
	MissionID  int64
	Count      int  // units held for this mission from the normal pool
	Stolen     int  // units held for this mission from the stolen pool
	CountNeed  *int // outstanding normal-pool need, nil when inapplicable
	StolenNeed *int // outstanding stolen-pool need, nil when inapplicable
}

// Entry is the reconciled view of one commodity: free stock left after
// mission earmarks, and the per-mission breakdown in the order missions
// were tracked.
type Entry struct {
	Key         string
	DisplayName string
	Count       int // free units, not stolen, not earmarked
	Stolen      int // free stolen units, not earmarked
	Missions    []MissionAllocation
}

// Manifest is the reconciled cargo view for one vessel.
type Manifest struct {
	// Entries is sorted by display name, case-insensitively; ties keep
	// first-seen order.
	Entries []Entry
	// Total is the raw unit count across the whole inventory.
	Total int
}

// Empty reports whether the manifest has nothing to show.
func (m *Manifest) Empty() bool {
	return len(m.Entries) == 0
}

var titleCaser = cases.Title(language.English)

// =============================================================================
// RECONCILIATION
// =============================================================================

// Reconcile matches a raw cargo snapshot against the mission ledger and
// produces the manifest. It is a pure function: neither input is mutated
// and identical inputs give identical output.
//
// Every unit of a commodity ends up in exactly one bucket: an entry's free
// count, its free stolen count, or one mission's allocation. Inventory
// lines earmarked for a mission go to that mission first, capped at what
// the mission still needs; the excess and all unearmarked stock form the
// free pools. Missions then draw from the free pools greedily in ledger
// insertion order. An earlier mission can starve a later one of the same
// commodity; that is deliberate, not a fairness bug.
//
// A nil snapshot or one without an inventory list yields an empty manifest,
// regardless of tracked missions. A nil ledger is treated as empty, which
// is how SRV cargo is reconciled.
func Reconcile(snap *journal.CargoSnapshot, ledger *Ledger, rare *RareRegistry) Manifest {
	if snap == nil || !snap.HasInventory {
		return Manifest{}
	}

	var (
		order   []string
		entries = make(map[string]*Entry)
		total   = 0
	)

	entryFor := func(key, display string) *Entry {
		if e, ok := entries[key]; ok {
			return e
		}
		e := &Entry{Key: key, DisplayName: display}
		entries[key] = e
		order = append(order, key)
		return e
	}

	allocFor := func(e *Entry, id int64) *MissionAllocation {
		for i := range e.Missions {
			if e.Missions[i].MissionID == id {
				return &e.Missions[i]
			}
		}
		e.Missions = append(e.Missions, MissionAllocation{MissionID: id})
		return &e.Missions[len(e.Missions)-1]
	}

	// Collate the raw inventory into per-commodity records.
	for _, item := range snap.Inventory {
		total += item.Count

		key := Canonicalize(item.Name)
		e, seen := entries[key]
		if !seen {
			e = entryFor(key, displayName(item, key, ledger, rare))
		}

		e.Count += item.Count - item.Stolen
		e.Stolen += item.Stolen

		// A line earmarked for a mission is not general free stock; move
		// exactly what this line contributed, so free totals stay
		// non-negative.
		if item.MissionID != nil {
			a := allocFor(e, *item.MissionID)
			a.Count += item.Count - item.Stolen
			a.Stolen += item.Stolen
			e.Count -= item.Count - item.Stolen
			e.Stolen -= item.Stolen
		}
	}

	// Attach every tracked mission to its commodity and allocate free
	// stock against outstanding needs, first come, first served.
	if ledger != nil {
		ledger.Each(func(id int64, m *Mission) bool {
			e := entryFor(m.Name, m.DisplayName)
			a := allocFor(e, id)

			if m.Stolen {
				need := m.Remaining
				if a.Stolen > need {
					// Earmarked beyond the requirement; the surplus is
					// effectively free stock.
					e.Stolen += a.Stolen - need
					a.Stolen = need
				}
				need -= a.Stolen
				if e.Stolen > 0 && need > 0 {
					take := min(e.Stolen, need)
					e.Stolen -= take
					a.Stolen += take
					need -= take
				}
				a.StolenNeed = &need
			} else {
				need := m.Remaining
				if a.Count > need {
					e.Count += a.Count - need
					a.Count = need
				}
				need -= a.Count
				if e.Count > 0 && need > 0 {
					take := min(e.Count, need)
					e.Count -= take
					a.Count += take
					need -= take
				}
				a.CountNeed = &need
			}
			return true
		})
	}

	out := Manifest{Total: total, Entries: make([]Entry, 0, len(order))}
	for _, key := range order {
		out.Entries = append(out.Entries, *entries[key])
	}
	sort.SliceStable(out.Entries, func(i, j int) bool {
		return strings.ToLower(out.Entries[i].DisplayName) <
			strings.ToLower(out.Entries[j].DisplayName)
	})
	return out
}

// displayName resolves the name shown for a commodity, trying the item's
// own localization, then any tracked mission for the same commodity, then
// a title-cased fallback of the raw name.
func displayName(item journal.CargoItem, key string, ledger *Ledger, rare *RareRegistry) string {
	display := item.NameLocalised
	if display == "" && ledger != nil {
		ledger.Each(func(_ int64, m *Mission) bool {
			if m.Name == key {
				display = m.DisplayName
				return false
			}
			return true
		})
	}
	if display == "" {
		display = titleCaser.String(item.Name)
	}
	if rare.Contains(key) {
		display += RareFlair
	}
	return display
}
