// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadCargoSnapshot reads the Cargo.json file the game keeps next to the
// journal. The file mirrors the most recent Cargo event payload. A missing
// or unreadable file is not an error; it simply yields no snapshot.
func LoadCargoSnapshot(journalDir string) (*CargoSnapshot, bool) {
	data, err := os.ReadFile(filepath.Join(journalDir, "Cargo.json"))
	if err != nil {
		return nil, false
	}

	var snap CargoSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	return &snap, true
}
