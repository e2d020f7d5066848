// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the edcargo application.
//
// This package contains common helper functions for string layout and file
// operations shared by the UI and config layers.
package util
