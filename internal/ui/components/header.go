// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Default header text.
const (
	DefaultTitle   = "Unit Converter"
	DefaultTagline = "Convert units across multiple categories with ease!"
)

// Header is the title bar.
type Header struct {
	Title   string
	Tagline string
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a Header with the default title and tagline.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:   DefaultTitle,
		Tagline: DefaultTagline,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)
	tagline := h.theme.HeaderSubtitle.Render(h.Tagline)
	body := lipgloss.JoinVertical(lipgloss.Left, title, tagline)

	style := h.theme.Header
	if h.Width > 4 {
		style = style.Width(h.Width - 2)
	}
	return style.Render(body)
}
