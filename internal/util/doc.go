// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the unitconv packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync and rename
//   - EnsureDir: create a private directory
//
// Terminal Text (display width aware, via go-runewidth):
//   - Width, Truncate, PadRight, PadLeft, Center
//
// # Usage
//
//	err := util.AtomicWriteFile(path, data, 0600)
//	cell := util.PadRight(unitName, 16)
package util
