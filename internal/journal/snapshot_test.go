// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCargoSnapshot(t *testing.T) {
	dir := t.TempDir()
	content := `{"timestamp":"2025-01-01T00:00:00Z","event":"Cargo","Vessel":"Ship","Count":4,"Inventory":[{"Name":"gold","Name_Localised":"Gold","Count":4,"Stolen":1}]}`
	if err := os.WriteFile(filepath.Join(dir, "Cargo.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, ok := LoadCargoSnapshot(dir)
	if !ok {
		t.Fatal("LoadCargoSnapshot reported no snapshot")
	}
	if snap.Vessel != "Ship" || snap.Count != 4 {
		t.Errorf("snapshot header = %q/%d, want Ship/4", snap.Vessel, snap.Count)
	}
	if !snap.HasInventory {
		t.Error("HasInventory = false for a file with an Inventory list")
	}
	if len(snap.Inventory) != 1 || snap.Inventory[0].Stolen != 1 {
		t.Errorf("inventory = %+v", snap.Inventory)
	}
}

func TestLoadCargoSnapshotMissingFile(t *testing.T) {
	if snap, ok := LoadCargoSnapshot(t.TempDir()); ok || snap != nil {
		t.Errorf("missing file returned (%v, %v), want (nil, false)", snap, ok)
	}
}

func TestLoadCargoSnapshotMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.json"), []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if snap, ok := LoadCargoSnapshot(dir); ok || snap != nil {
		t.Errorf("malformed file returned (%v, %v), want (nil, false)", snap, ok)
	}
}
