// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/edcargo-tui/internal/journal"
	"github.com/jeranaias/edcargo-tui/internal/manifest"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	session := manifest.NewSession(dir, "", nil)
	tailer := journal.NewTailer(dir, true, time.Second)
	require.NoError(t, tailer.Start())
	t.Cleanup(func() { tailer.Close() })

	m := NewModel(session, tailer)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return resized.(Model)
}

func feedLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	updated, _ := m.Update(lineMsg(line))
	return updated.(Model)
}

func TestModelPlaceholderBeforeAnyCargo(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Ship Capacity: ???")
}

func TestModelShipPanelAfterCargo(t *testing.T) {
	m := newTestModel(t)
	m = feedLine(t, m, `{"event":"Loadout","Ship":"Hauler","CargoCapacity":16}`)
	m = feedLine(t, m, `{"event":"Cargo","Vessel":"Ship","Count":5,"Inventory":[{"Name":"gold","Name_Localised":"Gold","Count":5,"Stolen":0}]}`)

	out := m.View()
	assert.Contains(t, out, "Ship Manifest: 5 / 16 [11]")
	assert.Contains(t, out, "Gold")
	assert.NotContains(t, out, "SRV Manifest")
}

func TestModelGuessedCapacityMark(t *testing.T) {
	m := newTestModel(t)
	m = feedLine(t, m, `{"event":"Cargo","Vessel":"Ship","Count":3,"Inventory":[{"Name":"gold","Name_Localised":"Gold","Count":3,"Stolen":0}]}`)

	// No Loadout seen; capacity is grown to match occupancy and marked.
	assert.Contains(t, m.View(), "Ship Manifest: 3 / 3? [0]")
}

func TestModelSRVSectionOnlyWhileInSRV(t *testing.T) {
	m := newTestModel(t)
	m = feedLine(t, m, `{"event":"Loadout","Ship":"Hauler","CargoCapacity":16}`)
	m = feedLine(t, m, `{"event":"Cargo","Vessel":"Ship","Count":1,"Inventory":[{"Name":"gold","Count":1,"Stolen":0}]}`)
	m = feedLine(t, m, `{"event":"LaunchSRV","SRVType":"TestBuggy"}`)

	out := m.View()
	assert.Contains(t, out, "SRV Manifest: 0 / 4")
	assert.Contains(t, out, "Ship Manifest")

	// Back in the ship, the SRV section goes away.
	m = feedLine(t, m, `{"event":"Loadout","Ship":"Hauler","CargoCapacity":16}`)
	assert.NotContains(t, m.View(), "SRV Manifest")
}

func TestModelMissionNeedShown(t *testing.T) {
	m := newTestModel(t)
	m = feedLine(t, m, `{"event":"MissionAccepted","MissionID":1,"Name":"Mission_Collect","Commodity":"$silver_name;","Commodity_Localised":"Silver","Count":5}`)
	m = feedLine(t, m, `{"event":"Cargo","Vessel":"Ship","Count":0,"Inventory":[]}`)

	out := m.View()
	assert.Contains(t, out, "Silver")
	assert.Contains(t, out, "[need 5]")
}

func TestModelCountsEventsAndErrors(t *testing.T) {
	m := newTestModel(t)
	m = feedLine(t, m, `{"event":"Loadout","Ship":"Hauler","CargoCapacity":16}`)
	m = feedLine(t, m, `not json`)

	require.Error(t, m.lastErr)
	assert.Equal(t, 2, m.events)
	assert.Contains(t, m.View(), "2 events")
}

func TestModelQuitClosesTailer(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	select {
	case _, ok := <-m.tailer.Lines():
		assert.False(t, ok, "line channel should be closed after quit")
	case <-time.After(2 * time.Second):
		t.Error("line channel not closed after quit")
	}
}
