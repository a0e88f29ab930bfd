// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// =============================================================================
// SELECTOR COMPONENT
// =============================================================================

// Selector is a single-choice dropdown cycled with left/right.
type Selector struct {
	Label   string
	Focused bool

	options []string
	index   int
	theme   *styles.Theme
}

// NewSelector creates a Selector with the first option selected.
func NewSelector(theme *styles.Theme, label string, options []string) *Selector {
	s := &Selector{Label: label, theme: theme}
	s.SetOptions(options)
	return s
}

// SetOptions replaces the options and selects the first one.
func (s *Selector) SetOptions(options []string) {
	s.options = append([]string(nil), options...)
	s.index = 0
}

// Options returns the options.
func (s *Selector) Options() []string {
	return append([]string(nil), s.options...)
}

// Value returns the selected option, or "" when there are none.
func (s *Selector) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.index]
}

// Index returns the selected position.
func (s *Selector) Index() int {
	return s.index
}

// Select selects value if present and reports whether it was.
func (s *Selector) Select(value string) bool {
	for i, o := range s.options {
		if o == value {
			s.index = i
			return true
		}
	}
	return false
}

// Next selects the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

// Prev selects the preceding option, wrapping around.
func (s *Selector) Prev() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

// View renders "Label  < value >".
func (s *Selector) View() string {
	style := s.theme.Control
	if s.Focused {
		style = s.theme.ControlFocused
	}
	value := s.theme.Arrow.Render("< ") + s.Value() + s.theme.Arrow.Render(" >")
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.theme.Label.Render(s.Label),
		style.Render(value),
	)
}

// =============================================================================
// BUTTON COMPONENT
// =============================================================================

// Button is a focusable action.
type Button struct {
	Label   string
	Focused bool
	theme   *styles.Theme
}

// NewButton creates a Button.
func NewButton(theme *styles.Theme, label string) *Button {
	return &Button{Label: label, theme: theme}
}

// View renders the button.
func (b *Button) View() string {
	if b.Focused {
		return b.theme.ButtonFocused.Render(b.Label)
	}
	return b.theme.Button.Render(b.Label)
}
