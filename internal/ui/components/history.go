// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/unitconv/internal/ui/styles"
	"github.com/jeranaias/unitconv/internal/util"
)

// =============================================================================
// RESULT LINE
// =============================================================================

// RenderSuccess renders a converted record with the success indicator.
func RenderSuccess(theme *styles.Theme, text string) string {
	return theme.Success.Render(styles.StatusIndicators.Success + " " + text)
}

// RenderError renders an error message.
func RenderError(theme *styles.Theme, text string) string {
	return theme.Error.Render(text)
}

// =============================================================================
// HISTORY PANEL
// =============================================================================

// HistoryPanel lists recent conversions, newest first.
type HistoryPanel struct {
	Title        string
	EmptyMessage string
	Width        int
	lines        []string
	theme        *styles.Theme
}

// NewHistoryPanel creates an empty panel.
func NewHistoryPanel(theme *styles.Theme, emptyMessage string) *HistoryPanel {
	return &HistoryPanel{
		Title:        "Conversion History",
		EmptyMessage: emptyMessage,
		Width:        60,
		theme:        theme,
	}
}

// SetLines replaces the numbered history lines.
func (p *HistoryPanel) SetLines(lines []string) {
	p.lines = append(p.lines[:0], lines...)
}

// Len returns the number of lines shown.
func (p *HistoryPanel) Len() int {
	return len(p.lines)
}

// View renders the panel.
func (p *HistoryPanel) View() string {
	inner := p.Width - 4
	if inner < 10 {
		inner = 10
	}

	var sb strings.Builder
	sb.WriteString(p.theme.PanelTitle.Render(p.Title))
	sb.WriteByte('\n')
	if len(p.lines) == 0 {
		sb.WriteString(p.theme.HistoryEmpty.Render(p.EmptyMessage))
	} else {
		for i, line := range p.lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(p.theme.HistoryItem.Render(util.Truncate(line, inner)))
		}
	}
	return p.theme.Panel.Width(inner + 2).Render(sb.String())
}
