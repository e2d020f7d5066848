// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package journal

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// EVENT TYPES
// =============================================================================

// Event is a decoded journal event. Each journal line carries an "event"
// discriminator; lines we do not consume decode to nil.
type Event interface {
	EventName() string
}

// CargoItem is one line of a cargo inventory: a commodity, how many units
// are held, how many of those are stolen, and an optional mission the line
// is earmarked for. Stolen never exceeds Count.
type CargoItem struct {
	Name          string `json:"Name"`
	NameLocalised string `json:"Name_Localised,omitempty"`
	Count         int    `json:"Count"`
	Stolen        int    `json:"Stolen"`
	MissionID     *int64 `json:"MissionID,omitempty"`
}

// CargoSnapshot is the inventory payload of a Cargo event or of the
// Cargo.json file. HasInventory distinguishes an omitted Inventory key
// from a present-but-empty one; the game only includes the full list on
// the first Cargo event of a session.
type CargoSnapshot struct {
	Vessel       string
	Count        int
	Inventory    []CargoItem
	HasInventory bool
}

// UnmarshalJSON records whether the Inventory key was present at all.
func (s *CargoSnapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Vessel    string       `json:"Vessel"`
		Count     int          `json:"Count"`
		Inventory *[]CargoItem `json:"Inventory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Vessel = raw.Vessel
	s.Count = raw.Count
	if raw.Inventory != nil {
		s.Inventory = *raw.Inventory
		s.HasInventory = true
	} else {
		s.Inventory = nil
		s.HasInventory = false
	}
	return nil
}

// LoadGame is sent when a commander loads into the game.
type LoadGame struct {
	Ship string `json:"Ship"`
}

// Loadout describes the current ship fit. CargoCapacity is nil when the
// event does not carry the field.
type Loadout struct {
	Ship          string `json:"Ship"`
	CargoCapacity *int   `json:"CargoCapacity"`
}

// LaunchSRV is sent when an SRV is deployed from the ship.
type LaunchSRV struct {
	SRVType string `json:"SRVType"`
}

// Cargo is the periodic cargo state event. The snapshot may lack its
// inventory list, in which case Cargo.json holds the authoritative copy.
type Cargo struct {
	CargoSnapshot
}

// StartUp is synthesized locally when the tailer begins mid-session; the
// journal itself never emits it. It prompts a best-effort Cargo.json read.
type StartUp struct{}

// MissionRef is one entry of the Missions event's id lists.
type MissionRef struct {
	MissionID int64 `json:"MissionID"`
}

// Missions is the periodic authoritative sync of active mission ids. It
// carries no commodity details, only ids.
type Missions struct {
	Active []MissionRef `json:"Active"`
}

// MissionAccepted is sent when a mission is taken. Commodity and Count are
// only present for cargo-bearing missions; Count is nil when absent.
type MissionAccepted struct {
	MissionID          int64  `json:"MissionID"`
	Name               string `json:"Name"`
	Commodity          string `json:"Commodity"`
	CommodityLocalised string `json:"Commodity_Localised"`
	Count              *int   `json:"Count"`
}

// MissionEnded covers MissionAbandoned, MissionCompleted and MissionFailed,
// which are handled identically: the mission stops being tracked.
type MissionEnded struct {
	MissionID int64  `json:"MissionID"`
	Reason    string `json:"-"`
}

// CargoDepot reports partial progress against a wing mission's delivery
// target. It is the only source of mission details for missions accepted
// before the session started.
type CargoDepot struct {
	MissionID           int64  `json:"MissionID"`
	UpdateType          string `json:"UpdateType"`
	CargoType           string `json:"CargoType"`
	CargoTypeLocalised  string `json:"CargoType_Localised"`
	TotalItemsToDeliver int    `json:"TotalItemsToDeliver"`
	ItemsDelivered      int    `json:"ItemsDelivered"`
	ItemsCollected      int    `json:"ItemsCollected"`
}

// Resurrect is sent after commander death; all cargo is gone.
type Resurrect struct{}

// Shutdown is sent on a clean quit.
type Shutdown struct{}

func (LoadGame) EventName() string        { return "LoadGame" }
func (Loadout) EventName() string         { return "Loadout" }
func (LaunchSRV) EventName() string       { return "LaunchSRV" }
func (Cargo) EventName() string           { return "Cargo" }
func (StartUp) EventName() string         { return "StartUp" }
func (Missions) EventName() string        { return "Missions" }
func (MissionAccepted) EventName() string { return "MissionAccepted" }
func (e MissionEnded) EventName() string  { return e.Reason }
func (CargoDepot) EventName() string      { return "CargoDepot" }
func (Resurrect) EventName() string       { return "Resurrect" }
func (Shutdown) EventName() string        { return "Shutdown" }

// =============================================================================
// DECODING
// =============================================================================

// Decode parses one journal line into a typed event. Lines for event kinds
// we do not consume yield (nil, nil). Only malformed JSON is an error;
// missing fields within a recognized event are normal and decode to zero
// values or nil pointers.
func Decode(line []byte) (Event, error) {
	var head struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(line, &head); err != nil {
		return nil, fmt.Errorf("decode journal line: %w", err)
	}

	var ev Event
	switch head.Event {
	case "LoadGame":
		ev = &LoadGame{}
	case "Loadout":
		ev = &Loadout{}
	case "LaunchSRV":
		ev = &LaunchSRV{}
	case "Cargo":
		ev = &Cargo{}
	case "Missions":
		ev = &Missions{}
	case "MissionAccepted":
		ev = &MissionAccepted{}
	case "MissionAbandoned", "MissionCompleted", "MissionFailed":
		ev = &MissionEnded{Reason: head.Event}
	case "CargoDepot":
		ev = &CargoDepot{}
	case "Resurrect":
		return &Resurrect{}, nil
	case "Shutdown", "ShutDown":
		return &Shutdown{}, nil
	default:
		return nil, nil
	}

	if err := json.Unmarshal(line, ev); err != nil {
		return nil, fmt.Errorf("decode %s event: %w", head.Event, err)
	}
	return ev, nil
}
