// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/unitconv/internal/ui/components"
)

// =============================================================================
// LAYOUT
// =============================================================================

const (
	// maxMainWidth caps the controls column.
	maxMainWidth = 72

	// sideBySideWidth is the narrowest terminal that shows docs beside the
	// controls instead of in place of the history.
	sideBySideWidth = 110
)

func (m *Model) mainWidth() int {
	if m.width < maxMainWidth {
		return m.width
	}
	return maxMainWidth
}

func (m *Model) sideBySide() bool {
	return m.width >= sideBySideWidth
}

func (m *Model) docsPanelWidth() int {
	if m.sideBySide() {
		return m.width - m.mainWidth() - 2
	}
	return m.mainWidth()
}

// layout propagates the window size to the components.
func (m *Model) layout() {
	w := m.mainWidth()
	m.header.SetWidth(w)
	m.history.Width = w
	m.status.SetWidth(m.width)
	m.help.Width = m.width
	m.status.Help = m.help.View(m.keys)
	if m.showDocs {
		m.renderDocs()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the converter screen.
func (m Model) View() string {
	var main strings.Builder

	main.WriteString(m.header.View())
	main.WriteString("\n\n")
	main.WriteString(m.category.View())
	main.WriteByte('\n')
	main.WriteString(m.from.View())
	main.WriteByte('\n')
	main.WriteString(m.to.View())
	main.WriteByte('\n')
	main.WriteString(m.valueView())
	main.WriteString("\n\n")
	main.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.convertBtn.View(), m.clearBtn.View()))
	main.WriteString("\n\n")

	switch {
	case m.result != "":
		main.WriteString(components.RenderSuccess(m.theme, m.result))
		main.WriteString("\n\n")
	case m.errMsg != "":
		main.WriteString(components.RenderError(m.theme, m.errMsg))
		main.WriteString("\n\n")
	}

	body := main.String()
	switch {
	case m.showDocs && m.sideBySide():
		body += m.history.View()
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.docsPanel())
	case m.showDocs:
		body += m.docsPanel()
	default:
		body += m.history.View()
	}

	return m.theme.App.Render(body) + "\n" + m.status.View()
}

func (m Model) valueView() string {
	style := m.theme.Control
	if m.focus == FocusValue {
		style = m.theme.ControlFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Label.Render("Value"),
		style.Render(m.value.View()),
	)
}

func (m Model) docsPanel() string {
	content := m.docsCache
	if content == "" {
		content = "Loading documentation..."
	}
	return m.theme.Docs.Width(m.docsPanelWidth()).Render(content)
}
