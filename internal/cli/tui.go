// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tui.go - Terminal UI command.

package cli

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/ui/converter"
	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// NewConverterModel builds the converter screen for a new session.
func NewConverterModel(app *App) (converter.Model, *session.Session) {
	cfg := app.Config
	sess := session.New(cfg.Converter.HistorySize)
	theme := styles.NewThemeWithMode(cfg.UI.Theme)

	m := converter.New(app.Service, sess, theme, converter.Options{
		DefaultValue:    cfg.Converter.DefaultValue,
		DefaultCategory: cfg.Converter.DefaultCategory,
		ShowDocs:        cfg.UI.ShowDocs,
	})
	return m, sess
}

// HandleTUI runs the terminal UI until the user quits. Config file edits
// are applied live.
func HandleTUI(ctx context.Context, app *App) error {
	if err := RequiresTTY("start the terminal UI"); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, sess := NewConverterModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())

	app.WatchConfig(ctx, func(cfg *config.Config) {
		p.Send(converter.ConfigReloadedMsg{Config: cfg})
	})

	log.Printf("SESSION_START | session=%s frontend=tui", sess.ID())
	_, err := p.Run()
	log.Printf("SESSION_END | session=%s duration=%s conversions=%d",
		sess.ID(), session.FormatDuration(sess.Duration()), len(sess.History()))
	if err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}
