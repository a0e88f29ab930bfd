// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package docs holds the user documentation shown in the TUI side panel,
// the web sidebar and "unitconv docs".
package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/convert"
)

//go:embed guide.md
var guideSource string

var guideTemplate = template.Must(template.New("guide").Parse(guideSource))

// Params fills in the parts of the guide that depend on configuration.
type Params struct {
	Categories   []catalog.Category
	HistorySize  int
	ErrorMessage string
}

// Markdown returns the guide as Markdown.
func Markdown(categories []catalog.Category, historySize int) string {
	var buf bytes.Buffer
	err := guideTemplate.Execute(&buf, Params{
		Categories:   categories,
		HistorySize:  historySize,
		ErrorMessage: convert.UserMessage,
	})
	if err != nil {
		// The template is static; failure here is a programming error.
		panic(fmt.Sprintf("docs: %v", err))
	}
	return buf.String()
}

// RenderTerminal renders markdown for a terminal of the given width.
// style is "dark", "light" or "auto"; "notty" disables colors.
func RenderTerminal(markdown string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(style))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts markdown to an HTML fragment. Raw HTML in the source
// is not passed through.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
