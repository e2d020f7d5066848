// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"strings"

	"github.com/jeranaias/edcargo-tui/internal/journal"
)

// =============================================================================
// MISSION RECORDS
// =============================================================================

// Mission is one tracked cargo requirement.
type Mission struct {
	// Name is the canonical commodity key the mission wants.
	Name string
	// DisplayName is the localized commodity name for rendering.
	DisplayName string
	// Total is the quantity originally required.
	Total int
	// Remaining is the quantity still undelivered.
	Remaining int
	// Allocated means the cargo must be sourced through the mission's own
	// collection mechanism rather than bought on the open market.
	Allocated bool
	// Stolen means the required units must come from the stolen pool.
	// The journal gives no explicit signal for this; the flag is a
	// prefix-based guess made at accept time.
	Stolen bool
}

// Ledger tracks active missions keyed by mission id, preserving insertion
// order. Insertion order matters: reconciliation allocates cargo to
// missions first come, first served.
type Ledger struct {
	order    []int64
	missions map[int64]*Mission
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{missions: make(map[int64]*Mission)}
}

// Len returns the number of tracked missions.
func (l *Ledger) Len() int {
	return len(l.missions)
}

// Get returns the mission with the given id, or nil.
func (l *Ledger) Get(id int64) *Mission {
	return l.missions[id]
}

// Each calls fn for every tracked mission in insertion order. Returning
// false stops the walk.
func (l *Ledger) Each(fn func(id int64, m *Mission) bool) {
	for _, id := range l.order {
		if !fn(id, l.missions[id]) {
			return
		}
	}
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Accept records a newly accepted mission. Missions with no trackable cargo
// requirement are rejected: on-foot and sightseeing types, and any mission
// lacking a commodity or a count. Returns true when a record was inserted.
//
// The requirement is classified by mission type prefix: delivery missions
// draw from an allocation, rescue and salvage missions are assumed to want
// stolen goods. The stolen mapping is a guess the journal gives no way to
// verify.
func (l *Ledger) Accept(ev *journal.MissionAccepted) bool {
	typ := strings.ToLower(ev.Name)
	if strings.HasPrefix(typ, "mission_onfoot_") || strings.HasPrefix(typ, "mission_sightseeing_") {
		return false
	}
	if ev.Commodity == "" || ev.Count == nil {
		return false
	}

	display := ev.CommodityLocalised
	if display == "" {
		display = ev.Commodity
	}

	l.insert(ev.MissionID, &Mission{
		Name:        Canonicalize(ev.Commodity),
		DisplayName: display,
		Total:       *ev.Count,
		Remaining:   *ev.Count,
		Allocated:   strings.HasPrefix(typ, "mission_delivery"),
		Stolen: strings.HasPrefix(typ, "mission_rescue") ||
			strings.HasPrefix(typ, "mission_salvage"),
	})
	return true
}

// Remove deletes the mission with the given id. Returns true when an entry
// was actually removed.
func (l *Ledger) Remove(id int64) bool {
	if _, ok := l.missions[id]; !ok {
		return false
	}
	delete(l.missions, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// ReconcileActive drops every tracked mission whose id is absent from the
// authoritative active set. This catches missions that ended while their
// terminal event went unseen. Returns true when anything was dropped.
func (l *Ledger) ReconcileActive(active []int64) bool {
	keep := make(map[int64]struct{}, len(active))
	for _, id := range active {
		keep[id] = struct{}{}
	}

	changed := false
	for _, id := range append([]int64(nil), l.order...) {
		if _, ok := keep[id]; !ok {
			l.Remove(id)
			changed = true
		}
	}
	return changed
}

// OnDepotUpdate applies a cargo depot progress report. For a known mission
// only the remaining quantity is refreshed. For an unknown mission, a record
// is synthesized from the depot's own fields; this is the sole way to pick
// up missions accepted before tracking started. A synthesized record cannot
// determine the stolen flag, which defaults to false.
func (l *Ledger) OnDepotUpdate(ev *journal.CargoDepot) {
	remaining := ev.TotalItemsToDeliver - ev.ItemsDelivered
	if remaining < 0 {
		remaining = 0
	}

	if m, ok := l.missions[ev.MissionID]; ok {
		m.Remaining = remaining
		return
	}

	display := ev.CargoTypeLocalised
	if display == "" {
		display = ev.CargoType
	}
	l.insert(ev.MissionID, &Mission{
		Name:        Canonicalize(ev.CargoType),
		DisplayName: display,
		Total:       ev.TotalItemsToDeliver,
		Remaining:   remaining,
		Allocated:   ev.ItemsCollected > 0,
		Stolen:      false,
	})
}

// insert adds or replaces a record. A replaced record keeps its original
// position in the allocation order.
func (l *Ledger) insert(id int64, m *Mission) {
	if _, ok := l.missions[id]; !ok {
		l.order = append(l.order, id)
	}
	l.missions[id] = m
}
