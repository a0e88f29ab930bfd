// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
)

// testApp builds an app whose journal and config file live in a temp dir.
func testApp(t *testing.T, args Args) (*App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "journal.db")
	if args.ConfigPath == "" {
		args.ConfigPath = filepath.Join(dir, "config.toml")
	}

	var out, errOut bytes.Buffer
	app, err := NewApp(args, cfg, &out, &errOut)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app, &out
}

// run invokes a handler with raw command arguments.
func run(app *App, out *bytes.Buffer, fn func(*App) error, raw ...string) (string, error) {
	out.Reset()
	app.Args.Raw = raw
	app.Args.Subcommand = ""
	if len(raw) > 0 {
		app.Args.Subcommand = raw[0]
	}
	err := fn(app)
	return out.String(), err
}

func withCtx(fn func(context.Context, *App) error) func(*App) error {
	return func(app *App) error { return fn(context.Background(), app) }
}

// =============================================================================
// CONVERT
// =============================================================================

func TestParseConversion(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		want    convert.Request
		wantErr bool
	}{
		{"three words", []string{"25", "celsius", "fahrenheit"}, convert.Request{Value: 25, From: "celsius", To: "fahrenheit"}, false},
		{"with to", []string{"1", "kilometer", "to", "meter"}, convert.Request{Value: 1, From: "kilometer", To: "meter"}, false},
		{"with into", []string{"2.5", "hour", "INTO", "minute"}, convert.Request{Value: 2.5, From: "hour", To: "minute"}, false},
		{"to as a unit name", []string{"1", "to", "meter"}, convert.Request{Value: 1, From: "to", To: "meter"}, false},
		{"too few", []string{"25", "celsius"}, convert.Request{}, true},
		{"too many", []string{"25", "celsius", "to", "fahrenheit", "now"}, convert.Request{}, true},
		{"not a number", []string{"abc", "meter", "foot"}, convert.Request{}, true},
		{"empty", nil, convert.Request{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConversion(tt.words)
			if tt.wantErr {
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr), "want ValidationError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	app, _ := testApp(t, Args{NoJournal: true})
	svc := app.Service

	assert.Equal(t, catalog.Temperature, resolveCategory(svc, "", "celsius", "kelvin"))
	assert.Equal(t, catalog.DataStorage, resolveCategory(svc, "data storage", "byte", "kilobyte"))
	assert.Equal(t, catalog.Category(""), resolveCategory(svc, "", "meter", "kilogram"))
	assert.Equal(t, catalog.Category(""), resolveCategory(svc, "", "celsius", "meter"))
	assert.Equal(t, catalog.Category("Energy"), resolveCategory(svc, "Energy", "joule", "calorie"))
	assert.Equal(t, catalog.Category(""), resolveCategory(svc, "", "furlong", "parsec"))
}

func TestCanonicalUnits(t *testing.T) {
	app, _ := testApp(t, Args{NoJournal: true})
	req := canonicalUnits(app.Service, convert.Request{From: "Celsius", To: "MB"})
	assert.Equal(t, "celsius", req.From)
	assert.Equal(t, "MB", req.To)
}

func TestHandleConvert_Text(t *testing.T) {
	app, out := testApp(t, Args{})

	got, err := run(app, out, withCtx(HandleConvert), "25", "celsius", "fahrenheit")
	require.NoError(t, err)
	assert.Contains(t, got, "25.0 celsius = 77.0000 fahrenheit")

	got, err = run(app, out, withCtx(HandleConvert), "1", "Kilometer", "to", "meter")
	require.NoError(t, err)
	assert.Contains(t, got, "1.0 kilometer = 1000.0000 meter")
}

func TestHandleConvert_JSON(t *testing.T) {
	app, out := testApp(t, Args{JSON: true, NoJournal: true})

	got, err := run(app, out, withCtx(HandleConvert), "1", "gigabyte", "megabyte")
	require.NoError(t, err)

	var resp struct {
		Success bool        `json:"success"`
		Data    ConvertData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Data Storage", resp.Data.Category)
	assert.InDelta(t, 1000.0, resp.Data.Output, 1e-9)
	assert.Equal(t, 4, resp.Data.Precision)
	assert.Equal(t, "1.0 gigabyte = 1000.0000 megabyte", resp.Data.Text)
}

func TestHandleConvert_Failures(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})

	_, err := run(app, out, withCtx(HandleConvert), "1", "meter", "kilogram")
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrNotPossible))
	assert.Equal(t, convert.UserMessage, userMessage(err))
	assert.Equal(t, ExitGeneralError, GetExitCode(err))

	_, err = run(app, out, withCtx(HandleConvert), "-5", "meter", "foot")
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrInvalidRequest))

	_, err = run(app, out, withCtx(HandleConvert), "1", "meter", "foot", "--category", "Energy")
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "not available")

	_, err = run(app, out, withCtx(HandleConvert), "1", "meter")
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleConvert_MixedPairNotJournaled(t *testing.T) {
	app, out := testApp(t, Args{})

	for _, pair := range [][]string{{"5", "celsius", "meter"}, {"5", "meter", "celsius"}} {
		_, err := run(app, out, withCtx(HandleConvert), pair...)
		require.Error(t, err, "%v", pair)
		assert.True(t, errors.Is(err, convert.ErrNotPossible), "%v", pair)
		assert.Equal(t, convert.UserMessage, userMessage(err))
		assert.Equal(t, ExitGeneralError, GetExitCode(err))
	}

	require.NotNil(t, app.Journal)
	n, err := app.Journal.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

// =============================================================================
// REPL
// =============================================================================

func TestREPL_Eval(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})
	r := NewREPL(app)
	ctx := context.Background()

	assert.True(t, r.Eval(ctx, "25 celsius to fahrenheit"))
	assert.Contains(t, out.String(), "🎉 25.0 celsius = 77.0000 fahrenheit")

	out.Reset()
	assert.True(t, r.Eval(ctx, "1 meter kilogram"))
	assert.Contains(t, out.String(), convert.UserMessage)

	out.Reset()
	assert.True(t, r.Eval(ctx, ":history"))
	assert.Contains(t, out.String(), "1. 25.0 celsius = 77.0000 fahrenheit")
	assert.NotContains(t, out.String(), "kilogram")

	out.Reset()
	assert.True(t, r.Eval(ctx, ":clear"))
	assert.Empty(t, r.Session().History())
	assert.True(t, r.Eval(ctx, ":history"))
	assert.Contains(t, out.String(), history.EmptyMessage)

	out.Reset()
	assert.True(t, r.Eval(ctx, ":units temperature"))
	assert.Contains(t, out.String(), "celsius, fahrenheit, kelvin")

	out.Reset()
	assert.True(t, r.Eval(ctx, ":bogus"))
	assert.Contains(t, out.String(), "unknown command :bogus")

	assert.True(t, r.Eval(ctx, "   "))
	assert.False(t, r.Eval(ctx, ":quit"))
	assert.False(t, r.Eval(ctx, ":Q"))
}

func TestREPL_HistoryNewestFirst(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})
	r := NewREPL(app)
	ctx := context.Background()

	r.Eval(ctx, "1 kilometer meter")
	r.Eval(ctx, "1 hour minute")
	out.Reset()
	r.Eval(ctx, ":history")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. 1.0 hour = 60.0000 minute", lines[0])
	assert.Equal(t, "2. 1.0 kilometer = 1000.0000 meter", lines[1])
}

func TestREPL_Complete(t *testing.T) {
	app, _ := testApp(t, Args{NoJournal: true})
	r := NewREPL(app)

	assert.Equal(t, []string{":categories", ":clear"}, r.Complete(":c"))
	assert.Equal(t, []string{"25 celsius", "25 centimeter", "25 cup"}, r.Complete("25 c"))
	assert.Equal(t, []string{"25 celsius terabyte", "25 celsius to"}, r.Complete("25 celsius t"))
	assert.Equal(t, []string{":units Time", ":units Temperature"}, r.Complete(":units t"))
	assert.Empty(t, r.Complete("25 zz"))
}

// =============================================================================
// CATALOG
// =============================================================================

func TestHandleCategories(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})

	got, err := run(app, out, HandleCategories)
	require.NoError(t, err)
	assert.Contains(t, got, "Length")
	assert.Contains(t, got, "meter, kilometer")

	app.Args.JSON = true
	got, err = run(app, out, HandleCategories)
	require.NoError(t, err)
	var resp struct {
		Data CategoriesData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	require.Len(t, resp.Data.Categories, 8)
	assert.Equal(t, "Length", resp.Data.Categories[0].Name)
	assert.Equal(t, "Data Storage", resp.Data.Categories[7].Name)
}

func TestHandleUnits(t *testing.T) {
	app, out := testApp(t, Args{Quiet: true, NoJournal: true})

	got, err := run(app, out, HandleUnits, "data", "storage")
	require.NoError(t, err)
	assert.Equal(t, "byte\nkilobyte\nmegabyte\ngigabyte\nterabyte\n", got)

	_, err = run(app, out, HandleUnits, "energy")
	assert.Equal(t, ExitNotFoundError, GetExitCode(err))

	_, err = run(app, out, HandleUnits)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

// =============================================================================
// JOURNAL
// =============================================================================

func TestHandleJournal_ListAndShow(t *testing.T) {
	app, out := testApp(t, Args{})
	ctx := context.Background()

	got, err := run(app, out, withCtx(HandleJournal))
	require.NoError(t, err)
	assert.Contains(t, got, "Journal is empty.")

	_, err = run(app, out, withCtx(HandleConvert), "25", "celsius", "fahrenheit")
	require.NoError(t, err)
	_, err = run(app, out, withCtx(HandleConvert), "1", "kilometer", "meter")
	require.NoError(t, err)

	app.Args.JSON = true
	got, err = run(app, out, withCtx(HandleJournal), "list", "--limit", "1")
	require.NoError(t, err)
	var resp struct {
		Data JournalListData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	assert.Equal(t, int64(2), resp.Data.Total)
	require.Len(t, resp.Data.Entries, 1)
	assert.Equal(t, "1.0 kilometer = 1000.0000 meter", resp.Data.Entries[0].Text)

	sessions, err := app.Journal.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	id := sessions[0].SessionID
	got, err = run(app, out, withCtx(HandleJournal), "show", id[:8])
	require.NoError(t, err)
	resp.Data = JournalListData{}
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	require.Len(t, resp.Data.Entries, 1)
	assert.Equal(t, id, resp.Data.Entries[0].SessionID)

	_, err = run(app, out, withCtx(HandleJournal), "show", "no-such-session")
	assert.Equal(t, ExitNotFoundError, GetExitCode(err))
}

func TestHandleJournal_Export(t *testing.T) {
	app, out := testApp(t, Args{Quiet: true})

	_, err := run(app, out, withCtx(HandleConvert), "25", "celsius", "fahrenheit")
	require.NoError(t, err)

	got, err := run(app, out, withCtx(HandleJournal), "export", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, got, "celsius")
	assert.Contains(t, got, "fahrenheit")

	dir := t.TempDir()
	app.Args.JSON = true
	got, err = run(app, out, withCtx(HandleJournal), "export", "--format", "md", "--output", dir)
	require.NoError(t, err)
	var resp struct {
		Data JournalExportData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	assert.Equal(t, 1, resp.Data.Entries)
	require.NotEmpty(t, resp.Data.Path)
	content, err := os.ReadFile(resp.Data.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "25.0 celsius = 77.0000 fahrenheit")

	_, err = run(app, out, withCtx(HandleJournal), "export", "--format", "xml")
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleJournal_Clear(t *testing.T) {
	app, out := testApp(t, Args{})

	_, err := run(app, out, withCtx(HandleConvert), "1", "hour", "minute")
	require.NoError(t, err)

	_, err = run(app, out, withCtx(HandleJournal), "clear")
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	got, err := run(app, out, withCtx(HandleJournal), "clear", "--confirm")
	require.NoError(t, err)
	assert.Contains(t, got, "Removed 1 conversions.")

	n, err := app.Journal.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHandleJournal_ReadableWhenRecordingOff(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})
	assert.Nil(t, app.Journal)
	assert.False(t, app.Service.HasJournal())

	got, err := run(app, out, withCtx(HandleJournal), "list")
	require.NoError(t, err)
	assert.Contains(t, got, "Journal is empty.")
	assert.NotNil(t, app.Journal)
}

// =============================================================================
// CONFIG
// =============================================================================

func TestHandleConfig_SetAndGet(t *testing.T) {
	app, out := testApp(t, Args{})
	path := app.Args.ConfigPath

	got, err := run(app, out, HandleConfig, "set", "converter.precision", "2")
	require.NoError(t, err)
	assert.Contains(t, got, "converter.precision = 2")

	saved := config.Default()
	require.NoError(t, config.LoadTOML(saved, path))
	assert.Equal(t, 2, saved.Converter.Precision)

	got, err = run(app, out, HandleConfig, "get", "ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "auto\n", got)

	_, err = run(app, out, HandleConfig, "get", "ui.colour")
	assert.Equal(t, ExitUsageError, GetExitCode(err))

	_, err = run(app, out, HandleConfig, "set", "converter.precision", "99")
	assert.Equal(t, ExitConfigError, GetExitCode(err))

	_, err = run(app, out, HandleConfig, "set", "converter.precision", "two")
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleConfig_InitAndPath(t *testing.T) {
	app, out := testApp(t, Args{})
	path := app.Args.ConfigPath

	got, err := run(app, out, HandleConfig, "path")
	require.NoError(t, err)
	assert.Contains(t, got, "not created yet")

	_, err = run(app, out, HandleConfig, "init")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(app, out, HandleConfig, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(app, out, HandleConfig, "init", "--force")
	require.NoError(t, err)

	got, err = run(app, out, HandleConfig, "show")
	require.NoError(t, err)
	assert.Contains(t, got, "# Effective configuration ("+path+")")
	assert.Contains(t, got, "[converter]")
}

// =============================================================================
// SERVE AND DOCS
// =============================================================================

func TestServerOptions(t *testing.T) {
	app, _ := testApp(t, Args{NoJournal: true})

	app.Args.Raw = []string{"--host", "0.0.0.0", "--port", "9000"}
	opts, err := serverOptions(app)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", opts.Host)
	assert.Equal(t, 9000, opts.Port)
	assert.Equal(t, 30*time.Minute, opts.SessionTimeout)
	assert.Equal(t, 10, opts.HistorySize)
	assert.Equal(t, 120, opts.RateLimitPerMinute)

	app.Args.Raw = nil
	opts, err = serverOptions(app)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", opts.Host)
	assert.Equal(t, 8790, opts.Port)

	app.Args.Raw = []string{"--port", "70000"}
	_, err = serverOptions(app)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleDocs_Raw(t *testing.T) {
	app, out := testApp(t, Args{NoJournal: true})

	got, err := run(app, out, HandleDocs, "--raw")
	require.NoError(t, err)
	assert.Contains(t, got, "Data Storage")
	assert.Contains(t, got, "#")
}

func TestDispatch(t *testing.T) {
	app, out := testApp(t, Args{Quiet: true, NoJournal: true})

	app.Args.Raw = []string{"1", "day", "hour"}
	require.NoError(t, Dispatch(context.Background(), CmdConvert, app))
	assert.Contains(t, out.String(), "1.0 day = 24.0000 hour")

	out.Reset()
	require.NoError(t, Dispatch(context.Background(), CmdHelp, app))
	assert.Contains(t, out.String(), "Usage:")

	err := Dispatch(context.Background(), CmdUnknown, app)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}
