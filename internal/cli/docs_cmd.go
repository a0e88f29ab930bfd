// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - Documentation and version commands.

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jeranaias/unitconv/internal/docs"
	"github.com/jeranaias/unitconv/internal/ui/styles"
)

// HandleDocs handles the "docs" command. --raw prints the Markdown source.
func HandleDocs(app *App) error {
	p := NewArgParser(app.Args.Raw)
	md := docs.Markdown(app.Service.Categories(), app.Config.Converter.HistorySize)

	if app.Args.JSON {
		return NewJSONResponse(CmdDocs.String(), map[string]string{"markdown": md}).Write(app.Out)
	}
	if p.BoolFlag("raw") {
		_, err := io.WriteString(app.Out, md)
		return err
	}

	style := "notty"
	if ColorsEnabled() {
		style = styles.NewThemeWithMode(app.Config.UI.Theme).GlamourStyle()
	}
	out, err := docs.RenderTerminal(md, GetTerminalWidth()-2, style)
	if err != nil {
		return fmt.Errorf("render docs: %w", err)
	}
	_, err = io.WriteString(app.Out, out)
	return err
}

// HandleVersion handles the "version" command.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse(CmdVersion.String(), data).Write(w)
	}
	PrintVersion(w)
	return nil
}
