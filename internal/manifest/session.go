// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"log"

	"github.com/jeranaias/edcargo-tui/internal/journal"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Session is the whole of the tracked play-session state: current vessel,
// capacities, the latest cargo snapshots for ship and SRV, and the mission
// ledger. It is mutated only by HandleEvent, driven by one journal event at
// a time, and reset wholesale when the session ends.
//
// Sessions are not safe for concurrent use; the journal stream is strictly
// ordered and so is event handling.
type Session struct {
	CurrentVessel string
	CurrentIsSRV  bool

	// ShipCapacity is a guess until a Loadout event supplies the real
	// number; while guessed it only ever grows to cover what is held.
	ShipCapacity        int
	ShipCapacityGuessed bool

	// SRVCapacity is nil while unknown; SRVs have no loadout event, so the
	// value comes from the fixed per-model table.
	SRVCapacity *int

	ShipCargo *journal.CargoSnapshot
	SRVCargo  *journal.CargoSnapshot

	Missions *Ledger

	// Rare survives Reset; the reference table does not change mid-session.
	Rare *RareRegistry

	journalDir string
	rareFile   string
	logger     *log.Logger
}

// NewSession creates a session. journalDir locates the Cargo.json fallback
// snapshot, rareFile the rare-commodity reference table; either may be
// empty. logger may be nil to disable debug output.
func NewSession(journalDir, rareFile string, logger *log.Logger) *Session {
	s := &Session{
		Rare:       LoadRareRegistry(rareFile),
		journalDir: journalDir,
		rareFile:   rareFile,
		logger:     logger,
	}
	s.Reset()
	return s
}

// ReloadRare re-reads the rare-commodity reference table. Called on game
// start events and available to the UI on demand.
func (s *Session) ReloadRare() {
	s.Rare = LoadRareRegistry(s.rareFile)
}

// Reset clears all per-session state. The rare registry is kept.
func (s *Session) Reset() {
	s.CurrentVessel = ""
	s.CurrentIsSRV = false
	s.ShipCapacity = 0
	s.ShipCapacityGuessed = true
	s.SRVCapacity = nil
	s.ShipCargo = nil
	s.SRVCargo = nil
	s.Missions = NewLedger()
}

func (s *Session) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// =============================================================================
// EVENT HANDLING
// =============================================================================

// HandleEvent applies one journal event to the session and reports whether
// anything display-relevant changed. Unconsumed or nil events are a no-op.
// Degenerate payloads never fail; a field the event lacks simply means that
// sub-step has nothing to do.
func (s *Session) HandleEvent(ev journal.Event) bool {
	if ev == nil {
		return false
	}

	changed := false

	switch ev := ev.(type) {
	case *journal.Shutdown:
		s.Reset()
		return true

	case *journal.Resurrect:
		// Death forfeits all cargo and mission progress tracking.
		s.Reset()
		return true

	case *journal.LoadGame:
		s.ReloadRare()
		s.trackVessel(Canonicalize(ev.Ship), nil)
		changed = true

	case *journal.Loadout:
		s.trackVessel(Canonicalize(ev.Ship), ev.CargoCapacity)
		changed = true

	case *journal.LaunchSRV:
		s.trackVessel(Canonicalize(ev.SRVType), nil)
		changed = true

	case *journal.StartUp:
		s.ReloadRare()
		// No events are back-filled at startup; Cargo.json is the only
		// view of what is currently held.
		if snap, ok := journal.LoadCargoSnapshot(s.journalDir); ok {
			s.storeSnapshot(snap)
			changed = true
		}

	case *journal.Cargo:
		snap := &ev.CargoSnapshot
		if !snap.HasInventory {
			// The game only writes the inventory list on the first Cargo
			// event; later ones defer to the Cargo.json snapshot.
			if fallback, ok := journal.LoadCargoSnapshot(s.journalDir); ok {
				fallback.Vessel = snap.Vessel
				snap = fallback
			}
		}
		s.storeSnapshot(snap)
		changed = true

	case *journal.Missions:
		active := make([]int64, 0, len(ev.Active))
		for _, ref := range ev.Active {
			active = append(active, ref.MissionID)
		}
		changed = s.Missions.ReconcileActive(active)

	case *journal.MissionAccepted:
		changed = s.Missions.Accept(ev)

	case *journal.MissionEnded:
		// Cargo state catches up via the next Cargo event; only the
		// tracking entry goes away here.
		changed = s.Missions.Remove(ev.MissionID)

	case *journal.CargoDepot:
		s.Missions.OnDepotUpdate(ev)
		changed = true
	}

	return changed
}

// trackVessel switches the session to the given vessel and refreshes the
// matching capacity: SRVs from the fixed table, ships from the loadout's
// capacity hint when present.
func (s *Session) trackVessel(vessel string, cargoCapacity *int) {
	s.CurrentVessel = vessel
	s.CurrentIsSRV = IsSRV(vessel)

	if s.CurrentIsSRV {
		if capacity, ok := SRVCapacity(vessel); ok {
			s.SRVCapacity = &capacity
		} else {
			s.SRVCapacity = nil
		}
		return
	}
	if vessel != "" && cargoCapacity != nil {
		s.ShipCapacity = *cargoCapacity
		s.ShipCapacityGuessed = false
	}
}

// storeSnapshot files a cargo snapshot under the vessel it describes.
func (s *Session) storeSnapshot(snap *journal.CargoSnapshot) {
	switch snap.Vessel {
	case "Ship":
		s.ShipCargo = snap
		s.debugf("ship cargo: %d units, %d lines", snap.Count, len(snap.Inventory))
	case "SRV":
		s.SRVCargo = snap
		s.debugf("srv cargo: %d units, %d lines", snap.Count, len(snap.Inventory))
	}
}

// =============================================================================
// RECONCILED VIEWS
// =============================================================================

// ShipManifest reconciles the ship's hold against the mission ledger.
func (s *Session) ShipManifest() Manifest {
	return Reconcile(s.ShipCargo, s.Missions, s.Rare)
}

// SRVManifest reconciles the SRV's hold. Mission cargo never rides in an
// SRV, so the ledger does not apply.
func (s *Session) SRVManifest() Manifest {
	return Reconcile(s.SRVCargo, nil, s.Rare)
}

// NoteShipOccupied grows a guessed ship capacity to cover what is actually
// held, and returns the effective capacity. A known capacity is returned
// unchanged.
func (s *Session) NoteShipOccupied(occupied int) int {
	if s.ShipCapacityGuessed && s.ShipCapacity < occupied {
		s.ShipCapacity = occupied
	}
	return s.ShipCapacity
}
