// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package manifest tracks cargo holdings and delivery missions for a
// commander's ship and SRV, and reconciles the two into a display-ready
// manifest.
//
// The package is built around a Session that consumes journal events one at
// a time and a pure Reconcile function that matches the current inventory
// against tracked missions: every unit of cargo is either free stock or
// earmarked for exactly one mission, and each mission reports how many
// units it still needs.
package manifest
