// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package converter provides the Bubble Tea model for the unit converter
// screen.
//
// The screen has six focusable controls in tab order: category, from unit,
// to unit, value, Convert and Clear History. Left/right cycle the focused
// selector; changing the category reloads both unit selectors with the
// first unit of the new category selected. Enter converts (or clears when
// Clear History is focused). "?" toggles the documentation panel.
//
// The model owns one session. Conversions go through service.Service, so
// the session history and the journal stay in step with the other front
// ends.
//
//	m := converter.New(svc, sess, theme, converter.Options{DefaultValue: 1})
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package converter
