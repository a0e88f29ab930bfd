// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// journal_cmd.go - Conversion journal command.
//
// Command: journal [subcommand]
// Short:   Browse, export and clear journaled conversions
// Aliases: j
//
// Subcommands:
//   list (default)      Recent conversions
//   sessions            Conversions grouped by session
//   show <id>           Conversions of one session (unique id prefix accepted)
//   export              Export entries as json, md or csv
//   clear               Delete every entry (requires --confirm)
//
// Flags:
//   --limit N              Entries to list (default: 20)
//   --format json|md|csv   Export format (default: json)
//   --output DIR           Write the export into DIR (default: stdout)
//   --session ID           Export one session only
//   --confirm              Required by clear

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jeranaias/unitconv/internal/export"
	"github.com/jeranaias/unitconv/internal/storage"
)

// DefaultJournalLimit is the number of entries journal list shows.
const DefaultJournalLimit = 20

// HandleJournal handles the "journal" command.
func HandleJournal(ctx context.Context, app *App) error {
	p := NewArgParser(app.Args.Raw)

	j, err := app.OpenJournal()
	if err != nil {
		return err
	}

	switch strings.ToLower(p.Subcommand()) {
	case "", "list", "ls":
		return journalList(ctx, app, j, p)
	case "sessions":
		return journalSessions(ctx, app, j)
	case "show":
		return journalShow(ctx, app, j, p.Positional(1))
	case "export":
		return journalExport(ctx, app, j, p)
	case "clear":
		return journalClear(ctx, app, j, p.BoolFlag("confirm"))
	default:
		return &ValidationError{
			Field:   "journal subcommand",
			Value:   p.Subcommand(),
			Reason:  "want list, sessions, show, export or clear",
			Example: "unitconv journal list --limit 5",
		}
	}
}

func journalList(ctx context.Context, app *App, j *storage.Journal, p *ArgParser) error {
	limit := p.FlagIntOrDefault("limit", DefaultJournalLimit)
	entries, err := j.Recent(ctx, limit)
	if err != nil {
		return err
	}
	total, err := j.Count(ctx)
	if err != nil {
		return err
	}
	return printEntries(app, "journal list", j.Path(), total, entries)
}

func journalShow(ctx context.Context, app *App, j *storage.Journal, id string) error {
	if id == "" {
		return ErrMissingArgument("session id", "unitconv journal show 3f2a")
	}
	id, err := resolveSessionID(ctx, j, id)
	if err != nil {
		return err
	}
	entries, err := j.BySession(ctx, id)
	if err != nil {
		return err
	}
	return printEntries(app, "journal show", j.Path(), int64(len(entries)), entries)
}

// resolveSessionID expands a unique prefix of a journaled session id.
func resolveSessionID(ctx context.Context, j *storage.Journal, id string) (string, error) {
	sessions, err := j.Sessions(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range sessions {
		if s.SessionID == id {
			return id, nil
		}
		if strings.HasPrefix(s.SessionID, id) {
			matches = append(matches, s.SessionID)
		}
	}
	switch len(matches) {
	case 0:
		return "", ErrNotFound("session", id)
	case 1:
		return matches[0], nil
	default:
		return "", &ValidationError{
			Field:  "session id",
			Value:  id,
			Reason: fmt.Sprintf("matches %d sessions", len(matches)),
		}
	}
}

func printEntries(app *App, command, path string, total int64, entries []storage.Entry) error {
	if entries == nil {
		entries = []storage.Entry{}
	}
	if app.Args.JSON {
		return NewJSONResponse(command, JournalListData{Path: path, Total: total, Entries: entries}).Write(app.Out)
	}
	if len(entries) == 0 {
		fmt.Fprintln(app.Out, DimStyle.Render("Journal is empty."))
		return nil
	}
	fmt.Fprint(app.Out, storage.FormatTable(entries))
	if !app.quiet() {
		fmt.Fprintln(app.Out, DimStyle.Render(fmt.Sprintf("%d of %d conversions", len(entries), total)))
	}
	return nil
}

func journalSessions(ctx context.Context, app *App, j *storage.Journal) error {
	sessions, err := j.Sessions(ctx)
	if err != nil {
		return err
	}
	if sessions == nil {
		sessions = []storage.SessionSummary{}
	}
	if app.Args.JSON {
		return NewJSONResponse("journal sessions", JournalSessionsData{Sessions: sessions}).Write(app.Out)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(app.Out, DimStyle.Render("Journal is empty."))
		return nil
	}
	fmt.Fprint(app.Out, storage.FormatSessions(sessions))
	return nil
}

func journalExport(ctx context.Context, app *App, j *storage.Journal, p *ArgParser) error {
	format := p.FlagOrDefault("format", "json")
	opts := export.DefaultOptions()

	var entries []storage.Entry
	var err error
	if id := p.Flag("session"); id != "" {
		if id, err = resolveSessionID(ctx, j, id); err != nil {
			return err
		}
		entries, err = j.BySession(ctx, id)
		opts.Title = "Session " + id
	} else {
		entries, err = j.Recent(ctx, 0)
	}
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return err
	}

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return &ValidationError{Field: "format", Value: format, Reason: err.Error()}
	}

	data := JournalExportData{Format: strings.ToLower(format), Entries: len(entries)}

	if dir := p.Flag("output"); dir != "" {
		abs, err := ValidateOutputDir(dir)
		if err != nil {
			return &ValidationError{Field: "output", Value: dir, Reason: err.Error()}
		}
		opts.OutputDir = abs
		path, err := export.ExportToFile(entries, exporter, opts)
		if err != nil {
			return err
		}
		log.Printf("JOURNAL_EXPORT | format=%s entries=%d path=%s", data.Format, len(entries), path)
		data.Path = path
		if app.Args.JSON {
			return NewJSONResponse("journal export", data).Write(app.Out)
		}
		fmt.Fprintf(app.Out, "Exported %d conversions to %s\n", len(entries), path)
		return nil
	}

	content, err := exporter.Export(entries)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if app.Args.JSON {
		data.Content = string(content)
		return NewJSONResponse("journal export", data).Write(app.Out)
	}
	_, err = app.Out.Write(content)
	return err
}

func journalClear(ctx context.Context, app *App, j *storage.Journal, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	n, err := j.Clear(ctx)
	if err != nil {
		return err
	}
	log.Printf("JOURNAL_CLEARED | removed=%d", n)
	if app.Args.JSON {
		return NewJSONResponse("journal clear", JournalClearData{Removed: n}).Write(app.Out)
	}
	fmt.Fprintf(app.Out, "Removed %d conversions.\n", n)
	return nil
}
