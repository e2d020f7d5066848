// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package journal reads the game's append-only journal stream.
//
// It decodes raw journal lines into typed events, follows the newest
// journal file as it grows (rotating when the game starts a new one),
// and loads the Cargo.json snapshot the game maintains alongside the
// journal for cargo events that omit their inventory.
package journal
