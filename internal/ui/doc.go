// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the edcargo terminal interface: a Bubble Tea model
// that consumes journal lines from the tailer, applies them to the tracked
// session, and renders the ship and SRV manifest panels.
package ui
