// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/docs"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/service"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/ui/components"
	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the focused control, in tab order.
type Focus int

const (
	FocusCategory Focus = iota
	FocusFrom
	FocusTo
	FocusValue
	FocusConvert
	FocusClear

	focusCount
)

// ErrValueNotNumber is shown when the value field does not parse.
const ErrValueNotNumber = "value must be a number"

// numericRunes are the runes the value field accepts.
const numericRunes = "0123456789.eE+-"

// =============================================================================
// MODEL
// =============================================================================

// Options configures a Model.
type Options struct {
	// DefaultValue pre-fills the value field.
	DefaultValue float64

	// DefaultCategory is selected at start when it exists.
	DefaultCategory string

	// ShowDocs opens the documentation panel at start.
	ShowDocs bool
}

// Model is the Bubble Tea model for the converter screen.
type Model struct {
	svc   *service.Service
	sess  *session.Session
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	// Components
	header     *components.Header
	category   *components.Selector
	from       *components.Selector
	to         *components.Selector
	value      textinput.Model
	convertBtn *components.Button
	clearBtn   *components.Button
	history    *components.HistoryPanel
	status     *components.StatusBar

	focus Focus

	// Last outcome; at most one is set.
	result string
	errMsg string

	showDocs  bool
	docsCache string
	docsWidth int

	width  int
	height int
}

// New creates a converter model for sess.
func New(svc *service.Service, sess *session.Session, theme *styles.Theme, opts Options) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}

	names := categoryNames(svc.Categories())

	m := Model{
		svc:        svc,
		sess:       sess,
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		header:     components.NewHeader(theme),
		category:   components.NewSelector(theme, "Category", names),
		from:       components.NewSelector(theme, "From", nil),
		to:         components.NewSelector(theme, "To", nil),
		convertBtn: components.NewButton(theme, "Convert"),
		clearBtn:   components.NewButton(theme, "Clear History"),
		history:    components.NewHistoryPanel(theme, history.EmptyMessage),
		status:     components.NewStatusBar(theme),
		showDocs:   opts.ShowDocs,
		width:      80,
		height:     24,
	}

	if opts.DefaultCategory != "" {
		if cat, ok := svc.Catalog().Lookup(opts.DefaultCategory); ok {
			m.category.Select(string(cat))
		}
	}
	m.loadUnits()

	defaultValue := opts.DefaultValue
	if defaultValue < 0 {
		defaultValue = 0
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0.0"
	ti.CharLimit = 32
	ti.Width = 20
	ti.SetValue(convert.FormatValue(defaultValue))
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	m.value = ti

	m.status.SessionID = sess.ID()
	m.status.Journal = svc.HasJournal()
	m.status.Precision = svc.Converter().Precision()

	m.applyFocus()
	m.refreshHistory()
	m.layout()
	return m
}

func categoryNames(cats []catalog.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// Init starts the session clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, session.TickCmd())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case session.TickMsg:
		m.status.Duration = m.sess.Duration()
		return m, session.TickCmd()

	case ConfigReloadedMsg:
		return m.applyConfig(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusValue {
		var cmd tea.Cmd
		m.value, cmd = m.value.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		return m, m.applyFocus()

	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus - 1 + focusCount) % focusCount
		return m, m.applyFocus()

	case key.Matches(msg, m.keys.Docs):
		m.showDocs = !m.showDocs
		if m.showDocs {
			m.renderDocs()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.clearHistory()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if m.focus == FocusClear {
			m.clearHistory()
		} else {
			m.convert()
		}
		return m, nil
	}

	if sel := m.focusedSelector(); sel != nil {
		switch {
		case key.Matches(msg, m.keys.Left):
			sel.Prev()
		case key.Matches(msg, m.keys.Right):
			sel.Next()
		default:
			return m, nil
		}
		if m.focus == FocusCategory {
			m.loadUnits()
			m.result, m.errMsg = "", ""
		}
		return m, nil
	}

	if m.focus == FocusValue {
		if msg.Type == tea.KeyRunes && !isNumeric(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.value, cmd = m.value.Update(msg)
		return m, cmd
	}
	return m, nil
}

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return true
}

func (m *Model) focusedSelector() *components.Selector {
	switch m.focus {
	case FocusCategory:
		return m.category
	case FocusFrom:
		return m.from
	case FocusTo:
		return m.to
	}
	return nil
}

// applyFocus syncs component focus flags with m.focus.
func (m *Model) applyFocus() tea.Cmd {
	m.category.Focused = m.focus == FocusCategory
	m.from.Focused = m.focus == FocusFrom
	m.to.Focused = m.focus == FocusTo
	m.convertBtn.Focused = m.focus == FocusConvert
	m.clearBtn.Focused = m.focus == FocusClear

	if m.focus == FocusValue {
		return m.value.Focus()
	}
	m.value.Blur()
	return nil
}

// loadUnits fills both unit selectors from the selected category.
func (m *Model) loadUnits() {
	units, err := m.svc.UnitsFor(catalog.Category(m.category.Value()))
	if err != nil {
		units = nil
	}
	m.from.SetOptions(units)
	m.to.SetOptions(units)
}

// =============================================================================
// ACTIONS
// =============================================================================

// convert runs the conversion for the current selection.
func (m *Model) convert() {
	m.result, m.errMsg = "", ""

	v, err := strconv.ParseFloat(strings.TrimSpace(m.value.Value()), 64)
	if err != nil {
		m.errMsg = ErrValueNotNumber
		return
	}

	rec, err := m.svc.Convert(context.Background(), m.sess, convert.Request{
		Category: catalog.Category(m.category.Value()),
		From:     m.from.Value(),
		To:       m.to.Value(),
		Value:    v,
	})
	if err != nil {
		m.errMsg = convert.UserFacing(err)
		return
	}
	m.result = rec.String()
	m.refreshHistory()
}

func (m *Model) clearHistory() {
	m.svc.ClearHistory(context.Background(), m.sess)
	m.result, m.errMsg = "", ""
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	m.history.SetLines(m.svc.History(m.sess))
}

// applyConfig applies the live-reloadable settings.
func (m Model) applyConfig(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	cfg := msg.Config
	if cfg == nil {
		return m, nil
	}

	if cfg.Converter.Precision != m.svc.Converter().Precision() {
		m.svc.SetPrecision(cfg.Converter.Precision)
		m.status.Precision = cfg.Converter.Precision
	}
	if cfg.UI.Theme != m.theme.Mode {
		// Components share the theme pointer.
		*m.theme = *styles.NewThemeWithMode(cfg.UI.Theme)
		m.value.TextStyle = m.theme.InputText
		m.value.PlaceholderStyle = m.theme.InputPlaceholder
		m.docsCache = ""
		if m.showDocs {
			m.renderDocs()
		}
		log.Printf("THEME_CHANGED | theme=%s", m.theme.Mode)
	}
	return m, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Focus returns the focused control.
func (m Model) Focus() Focus {
	return m.focus
}

// Result returns the last successful record text, if any.
func (m Model) Result() string {
	return m.result
}

// Err returns the last error message, if any.
func (m Model) Err() string {
	return m.errMsg
}

// Selection returns the selected category and units.
func (m Model) Selection() (category, from, to string) {
	return m.category.Value(), m.from.Value(), m.to.Value()
}

// Value returns the raw value field text.
func (m Model) Value() string {
	return m.value.Value()
}

// ShowingDocs reports whether the docs panel is open.
func (m Model) ShowingDocs() bool {
	return m.showDocs
}

// renderDocs renders the guide for the current docs panel width.
func (m *Model) renderDocs() {
	width := m.docsPanelWidth() - 2
	if width < 20 {
		width = 20
	}
	if m.docsCache != "" && m.docsWidth == width {
		return
	}
	md := docs.Markdown(m.svc.Categories(), m.sess.HistoryCap())
	out, err := docs.RenderTerminal(md, width, m.theme.GlamourStyle())
	if err != nil {
		log.Printf("DOCS_RENDER_FAILED | error=%v", err)
		out = md
	}
	m.docsCache = strings.TrimRight(out, "\n")
	m.docsWidth = width
}
