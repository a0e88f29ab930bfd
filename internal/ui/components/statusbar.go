// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: session, duration, journal state, precision
// and key help.
type StatusBar struct {
	SessionID string
	Duration  time.Duration
	Journal   bool
	Precision int
	Help      string // rendered bubbles/help short view
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width:     80,
		Precision: 4,
		theme:     theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar. Narrow terminals drop the key help first,
// then the precision and duration.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	id := s.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	parts := []string{
		s.theme.StatusLabel.Render("session ") + s.theme.StatusValue.Render(id),
		s.renderJournal(),
	}
	if s.Width >= 60 {
		parts = append(parts,
			s.theme.StatusLabel.Render("time ")+s.theme.StatusValue.Render(session.FormatDuration(s.Duration)),
			s.theme.StatusLabel.Render("precision ")+s.theme.StatusValue.Render(strconv.Itoa(s.Precision)),
		)
	}

	line := strings.Join(parts, sep)
	if s.Width >= 100 && s.Help != "" {
		line += sep + s.Help
	}

	return s.theme.StatusBar.Width(s.Width).MaxWidth(s.Width).Render(line)
}

func (s *StatusBar) renderJournal() string {
	if s.Journal {
		return s.theme.JournalOn.Render("journal on")
	}
	return s.theme.JournalOff.Render(styles.StatusIndicators.Warning + " journal off")
}
