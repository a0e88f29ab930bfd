// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes journaled conversions to files.
//
// # Supported Formats
//
//   - JSON: the complete entries, suitable for re-import
//   - Markdown: a titled table of conversions
//   - CSV: one row per conversion for spreadsheets
//
// # Usage
//
//	exp, err := export.ForFormat("md", nil)
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(entries, exp, &export.Options{OutputDir: "."})
package export
