// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"regexp"
	"strings"
)

// Commodity and vessel names arrive in two shapes depending on the event
// source: a bare identifier ("gold") or a localization template
// ("$Gold_name;"). Both must map to the same key.
var canonicalRE = regexp.MustCompile(`^\$(.+)_name;`)

// Canonicalize converts an item or vessel name to its canonical lowercase
// key. Canonical keys pass through unchanged, so the function is idempotent.
func Canonicalize(item string) string {
	item = strings.ToLower(item)
	if m := canonicalRE.FindStringSubmatch(item); m != nil {
		return m[1]
	}
	return item
}
