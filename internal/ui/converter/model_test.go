// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/service"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/ui/styles"
	"github.com/jeranaias/unitconv/internal/units"
)

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T, cat *catalog.Catalog) Model {
	t.Helper()
	if cat == nil {
		cat = catalog.Default()
	}
	svc := service.New(convert.New(units.NewRegistry()), cat, nil)
	theme := styles.NewThemeWithMode(styles.ModeDark)
	return New(svc, session.New(history.DefaultCapacity), theme, Options{
		DefaultValue:    1,
		DefaultCategory: string(cat.Categories()[0]),
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlU    = tea.KeyMsg{Type: tea.KeyCtrlU}
	ctrlL    = tea.KeyMsg{Type: tea.KeyCtrlL}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// =============================================================================
// INITIAL STATE
// =============================================================================

func TestNew_InitialState(t *testing.T) {
	m := newTestModel(t, nil)

	cat, from, to := m.Selection()
	assert.Equal(t, "Length", cat)
	assert.Equal(t, "meter", from)
	assert.Equal(t, "meter", to)
	assert.Equal(t, "1.0", m.Value())
	assert.Equal(t, FocusCategory, m.Focus())
	assert.Empty(t, m.Result())
	assert.Empty(t, m.Err())

	view := m.View()
	assert.Contains(t, view, "Unit Converter")
	assert.Contains(t, view, history.EmptyMessage)
	assert.Contains(t, view, "journal off")
}

func TestNew_DefaultCategory(t *testing.T) {
	svc := service.New(convert.New(units.NewRegistry()), catalog.Default(), nil)
	m := New(svc, session.New(10), nil, Options{DefaultCategory: "temperature", DefaultValue: -3})

	cat, from, _ := m.Selection()
	assert.Equal(t, "Temperature", cat)
	assert.Equal(t, "celsius", from)
	assert.Equal(t, "0.0", m.Value(), "negative default is clamped")
}

func TestInit_ReturnsCommands(t *testing.T) {
	m := newTestModel(t, nil)
	assert.NotNil(t, m.Init())
}

// =============================================================================
// FOCUS AND SELECTION
// =============================================================================

func TestFocus_TabOrderWraps(t *testing.T) {
	m := newTestModel(t, nil)

	want := []Focus{FocusFrom, FocusTo, FocusValue, FocusConvert, FocusClear, FocusCategory}
	for _, f := range want {
		m = send(t, m, tab)
		assert.Equal(t, f, m.Focus())
	}

	m = send(t, m, shiftTab)
	assert.Equal(t, FocusClear, m.Focus())
}

func TestCategoryChange_ReloadsUnits(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, right)
	cat, from, to := m.Selection()
	assert.Equal(t, "Mass", cat)
	assert.Equal(t, "kilogram", from)
	assert.Equal(t, "kilogram", to)

	m = send(t, m, left, left)
	cat, from, _ = m.Selection()
	assert.Equal(t, "Data Storage", cat, "left wraps to the last category")
	assert.Equal(t, "byte", from)
}

func TestCategoryChange_ClearsResult(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, enter)
	require.NotEmpty(t, m.Result())

	m = send(t, m, right)
	assert.Empty(t, m.Result())
}

func TestUnitSelectors_Cycle(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tab, right, right, tab, left)

	_, from, to := m.Selection()
	assert.Equal(t, "centimeter", from)
	assert.Equal(t, "inch", to)
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestConvert_TemperatureFlow(t *testing.T) {
	m := newTestModel(t, nil)

	// Length -> Mass -> Volume -> Time -> Temperature
	m = send(t, m, right, right, right, right)
	m = send(t, m, tab, tab, right) // to: fahrenheit
	m = send(t, m, tab, ctrlU, runes("25"))
	assert.Equal(t, "25", m.Value())

	m = send(t, m, enter)
	assert.Equal(t, "25.0 celsius = 77.0000 fahrenheit", m.Result())
	assert.Empty(t, m.Err())

	view := m.View()
	assert.Contains(t, view, "🎉 25.0 celsius = 77.0000 fahrenheit")
	assert.Contains(t, view, "1. 25.0 celsius = 77.0000 fahrenheit")
}

func TestConvert_FromButton(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tab, right, tab, tab, tab) // from: kilometer, focus: Convert
	require.Equal(t, FocusConvert, m.Focus())

	m = send(t, m, enter)
	assert.Equal(t, "1.0 kilometer = 1000.0000 meter", m.Result())
}

func TestValueInput_RejectsNonNumeric(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tab, tab, tab, ctrlU, runes("abc"), runes("2.5"), runes("x"))
	assert.Equal(t, "2.5", m.Value())
}

func TestValueInput_IgnoredWhenNotFocused(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runes("9"))
	assert.Equal(t, "1.0", m.Value())
}

func TestConvert_EmptyValue(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tab, tab, tab, ctrlU, enter)

	assert.Equal(t, ErrValueNotNumber, m.Err())
	assert.Empty(t, m.Result())
	assert.Contains(t, m.View(), ErrValueNotNumber)
}

func TestConvert_NegativeValueRejected(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tab, tab, tab, ctrlU, runes("-5"), enter)

	assert.Equal(t, "value must be zero or greater", m.Err())
	assert.Contains(t, m.View(), history.EmptyMessage)
}

func TestConvert_IncompatibleUnits(t *testing.T) {
	cat, err := catalog.New([]catalog.Entry{{Category: "Mixed", Units: []string{"meter", "gram"}}})
	require.NoError(t, err)

	m := newTestModel(t, cat)
	m = send(t, m, tab, tab, right, enter)

	assert.Equal(t, convert.UserMessage, m.Err())
	assert.Empty(t, m.Result())
	assert.Contains(t, m.View(), history.EmptyMessage, "failed conversions are not recorded")
}

func TestHistory_KeepsTen(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 11; i++ {
		m = send(t, m, enter)
	}
	assert.Equal(t, 10, m.history.Len())
}

// =============================================================================
// CLEAR HISTORY
// =============================================================================

func TestClear_FromButton(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, enter)
	require.Equal(t, 1, m.history.Len())

	m = send(t, m, shiftTab) // Clear History
	require.Equal(t, FocusClear, m.Focus())
	m = send(t, m, enter)

	assert.Equal(t, 0, m.history.Len())
	assert.Empty(t, m.Result())
	assert.Contains(t, m.View(), history.EmptyMessage)
}

func TestClear_Shortcut(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, enter, enter, ctrlL)
	assert.Equal(t, 0, m.history.Len())
}

// =============================================================================
// DOCS, QUIT, TICKS
// =============================================================================

func TestDocs_Toggle(t *testing.T) {
	m := newTestModel(t, nil)
	assert.False(t, m.ShowingDocs())

	m = send(t, m, runes("?"))
	assert.True(t, m.ShowingDocs())
	assert.NotEmpty(t, m.docsCache)
	assert.NotContains(t, m.View(), history.EmptyMessage, "narrow layout shows docs in place of history")

	m = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Contains(t, m.View(), history.EmptyMessage, "wide layout shows both")

	m = send(t, m, runes("?"))
	assert.False(t, m.ShowingDocs())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestTick_UpdatesDuration(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(session.TickMsg{Time: time.Now()})
	assert.NotNil(t, cmd, "tick reschedules itself")
	_ = next.(Model)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, 120, m.status.Width)
	assert.Equal(t, maxMainWidth, m.history.Width)
}

// =============================================================================
// LIVE CONFIG
// =============================================================================

func TestConfigReloaded_AppliesPrecisionAndTheme(t *testing.T) {
	m := newTestModel(t, nil)

	cfg := config.Default()
	cfg.Converter.Precision = 2
	cfg.UI.Theme = styles.ModeLight
	m = send(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, 2, m.svc.Converter().Precision())
	assert.Equal(t, 2, m.status.Precision)
	assert.Equal(t, styles.ModeLight, m.theme.Mode)

	m = send(t, m, enter)
	assert.Equal(t, "1.0 meter = 1.00 meter", m.Result())
}

func TestConfigReloaded_Nil(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, ConfigReloadedMsg{})
	assert.Equal(t, convert.DefaultPrecision, m.svc.Converter().Precision())
}
