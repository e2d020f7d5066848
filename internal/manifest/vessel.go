// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

// Canonical vessel keys of the two SRV models. Anything else, including
// vessel types added by future game updates, is treated as a ship.
const (
	srvScarab   = "testbuggy"
	srvScorpion = "combat_multicrew_srv_01"
)

// IsSRV reports whether the canonical vessel key names an SRV.
func IsSRV(vessel string) bool {
	return vessel == srvScarab || vessel == srvScorpion
}

// SRVCapacity returns the fixed cargo capacity of a known SRV model. The
// second return is false for anything that is not a known SRV; callers must
// then render a placeholder instead of a number.
func SRVCapacity(vessel string) (int, bool) {
	switch vessel {
	case srvScarab:
		return 4, true
	case srvScorpion:
		return 2, true
	default:
		return 0, false
	}
}
