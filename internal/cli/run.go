// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
)

// Dispatch runs a command that needs an App.
func Dispatch(ctx context.Context, cmd Command, app *App) error {
	switch cmd {
	case CmdTUI:
		return HandleTUI(ctx, app)
	case CmdConvert:
		return HandleConvert(ctx, app)
	case CmdREPL:
		return HandleREPL(ctx, app)
	case CmdServe:
		return HandleServe(ctx, app)
	case CmdCategories:
		return HandleCategories(app)
	case CmdUnits:
		return HandleUnits(app)
	case CmdJournal:
		return HandleJournal(ctx, app)
	case CmdConfig:
		return HandleConfig(app)
	case CmdDocs:
		return HandleDocs(app)
	case CmdVersion:
		return HandleVersion(app.Out, app.Args)
	case CmdHelp:
		PrintUsage(app.Out)
		return nil
	default:
		return &ValidationError{Field: "command", Value: app.Args.Subcommand, Reason: "run unitconv help for usage"}
	}
}

// NeedsApp reports whether cmd loads config and opens the journal.
// Help, version and unknown commands run without either.
func NeedsApp(cmd Command) bool {
	switch cmd {
	case CmdHelp, CmdVersion, CmdUnknown:
		return false
	}
	return true
}

// commandName is the name used in JSON error envelopes.
func commandName(cmd Command, args Args) string {
	if cmd == CmdJournal || cmd == CmdConfig {
		if args.Subcommand != "" {
			return fmt.Sprintf("%s %s", cmd, args.Subcommand)
		}
	}
	return cmd.String()
}

// Fail displays err for cmd and returns the process exit code.
func Fail(cmd Command, args Args, err error) int {
	if err == nil {
		return ExitSuccess
	}
	out := os.Stderr
	if args.JSON {
		out = os.Stdout
	}
	DisplayError(out, err, args.JSON, commandName(cmd, args))
	return GetExitCode(err)
}
