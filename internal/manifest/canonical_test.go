// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$gold_name;", "gold"},
		{"$Gold_name;", "gold"},
		{"Gold", "gold"},
		{"gold", "gold"},
		{"$onionheadc_name;", "onionheadc"},
		{"TestBuggy", "testbuggy"},
		{"", ""},
		// Template not anchored at the start stays a plain name.
		{"x$gold_name;", "x$gold_name;"},
	}

	for _, tc := range tests {
		got := Canonicalize(tc.in)
		if got != tc.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{"$gold_name;", "Gold", "combat_multicrew_srv_01", ""}
	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
