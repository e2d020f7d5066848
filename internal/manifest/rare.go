// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"encoding/csv"
	"io"
	"os"
)

// RareRegistry is the set of canonical keys of rare commodities. The game
// gives no inline metadata for rarity, so the set is loaded from the
// rare_commodity.csv reference table shipped with FDevIDs data.
type RareRegistry struct {
	keys map[string]struct{}
}

// LoadRareRegistry reads the reference table at path and returns the
// registry. A missing, unreadable or malformed file yields an empty
// registry, never an error; rarity is display flair only.
func LoadRareRegistry(path string) *RareRegistry {
	reg := &RareRegistry{keys: make(map[string]struct{})}
	if path == "" {
		return reg
	}

	f, err := os.Open(path)
	if err != nil {
		return reg
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return reg
	}
	symbolCol := -1
	for i, name := range header {
		if name == "symbol" {
			symbolCol = i
			break
		}
	}
	if symbolCol < 0 {
		return reg
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip unparseable rows rather than discarding the rest.
			continue
		}
		if symbolCol < len(row) && row[symbolCol] != "" {
			reg.keys[Canonicalize(row[symbolCol])] = struct{}{}
		}
	}
	return reg
}

// Contains reports whether the canonical key names a rare commodity.
// Safe on a nil registry.
func (r *RareRegistry) Contains(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.keys[key]
	return ok
}

// Len returns the number of registered rare commodities.
func (r *RareRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}
