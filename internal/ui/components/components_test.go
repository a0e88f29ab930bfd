// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/unitconv/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewThemeWithMode(styles.ModeDark)
}

// =============================================================================
// SELECTOR TESTS
// =============================================================================

func TestSelector_Cycle(t *testing.T) {
	s := NewSelector(testTheme(), "From", []string{"a", "b", "c"})
	assert.Equal(t, "a", s.Value())

	s.Next()
	s.Next()
	assert.Equal(t, "c", s.Value())
	s.Next()
	assert.Equal(t, "a", s.Value(), "wraps forward")
	s.Prev()
	assert.Equal(t, "c", s.Value(), "wraps backward")
}

func TestSelector_SetOptionsResets(t *testing.T) {
	s := NewSelector(testTheme(), "From", []string{"a", "b"})
	s.Next()
	s.SetOptions([]string{"x", "y"})
	assert.Equal(t, "x", s.Value())
	assert.Equal(t, 0, s.Index())
}

func TestSelector_Select(t *testing.T) {
	s := NewSelector(testTheme(), "To", []string{"a", "b"})
	assert.True(t, s.Select("b"))
	assert.Equal(t, "b", s.Value())
	assert.False(t, s.Select("z"))
	assert.Equal(t, "b", s.Value())
}

func TestSelector_Empty(t *testing.T) {
	s := NewSelector(testTheme(), "To", nil)
	s.Next()
	s.Prev()
	assert.Equal(t, "", s.Value())
}

func TestSelector_View(t *testing.T) {
	s := NewSelector(testTheme(), "Category", []string{"Length"})
	view := s.View()
	assert.Contains(t, view, "Category")
	assert.Contains(t, view, "Length")
}

func TestButton_View(t *testing.T) {
	b := NewButton(testTheme(), "Convert")
	assert.Contains(t, b.View(), "Convert")
	b.Focused = true
	assert.Contains(t, b.View(), "Convert")
}

// =============================================================================
// HISTORY AND RESULT TESTS
// =============================================================================

func TestHistoryPanel_Empty(t *testing.T) {
	p := NewHistoryPanel(testTheme(), "No conversions yet.")
	assert.Contains(t, p.View(), "No conversions yet.")
	assert.Equal(t, 0, p.Len())
}

func TestHistoryPanel_Lines(t *testing.T) {
	p := NewHistoryPanel(testTheme(), "empty")
	p.SetLines([]string{"1. 1.0 meter = 100.0000 centimeter"})
	view := p.View()
	assert.Contains(t, view, "1. 1.0 meter = 100.0000 centimeter")
	assert.NotContains(t, view, "empty")
}

func TestRenderResult(t *testing.T) {
	theme := testTheme()
	assert.Contains(t, RenderSuccess(theme, "25.0 celsius = 77.0000 fahrenheit"), "🎉 25.0 celsius")
	assert.Contains(t, RenderError(theme, "nope"), "nope")
}

// =============================================================================
// HEADER AND STATUS BAR TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(100)
	view := h.View()
	assert.Contains(t, view, DefaultTitle)
	assert.Contains(t, view, DefaultTagline)
}

func TestStatusBar_Layouts(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SessionID = "0123456789abcdef"
	s.Duration = 90 * time.Second
	s.Journal = true
	s.Help = "? docs"

	s.SetWidth(120)
	wide := s.View()
	assert.Contains(t, wide, "01234567")
	assert.NotContains(t, wide, "89abcdef")
	assert.Contains(t, wide, "journal on")
	assert.Contains(t, wide, "precision 4")
	assert.Contains(t, wide, "? docs")

	s.SetWidth(50)
	narrow := s.View()
	assert.NotContains(t, narrow, "precision")
	for _, line := range strings.Split(narrow, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50)
	}
}

func TestStatusBar_JournalOff(t *testing.T) {
	s := NewStatusBar(testTheme())
	assert.Contains(t, s.View(), "journal off")
}

// =============================================================================
// HIGHLIGHT TESTS
// =============================================================================

func TestHighlightJSON(t *testing.T) {
	out := HighlightJSON(`{"value": 1}`)
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "\x1b[", "output should carry ANSI escapes")
}

func TestHighlight_UnknownLanguage(t *testing.T) {
	out := Highlight("plain words", "no-such-language")
	assert.Contains(t, out, "plain")
}
