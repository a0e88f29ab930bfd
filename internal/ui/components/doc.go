// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual building blocks of the converter
// TUI: header, selectors, buttons, the result line, the history panel and
// the status bar. It also holds the chroma highlighter used for JSON output.
//
// Components render with a *styles.Theme and keep no Bubble Tea state of
// their own; the converter model owns focus and key handling.
//
//	cat := components.NewSelector(theme, "Category", names)
//	cat.Next()
//	fmt.Println(cat.View())
package components
