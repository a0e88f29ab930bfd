// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the commands of unitconv.
//
// Every front end (terminal UI, REPL, one-shot convert and the web
// server) drives the same service.Service built by Load, so history,
// validation and journaling behave the same everywhere.
//
// # Key Types
//
//   - Command: Enumeration of the available commands
//   - Args: Global flags plus the raw arguments of the command
//   - App: Config, service and journal shared by a command run
//   - ArgParser: Flag and positional parsing for subcommands
//   - JSONResponse: Envelope printed by every command under --json
//
// # Usage
//
//	cmd, args := cli.Parse()
//	app, err := cli.Load(args, cli.LogMode(cmd, args))
//	if err != nil {
//	    os.Exit(cli.Fail(cmd, args, err))
//	}
//	defer app.Close()
//	os.Exit(cli.Fail(cmd, args, cli.Dispatch(ctx, cmd, app)))
//
// # Commands Overview
//
//   - tui: Terminal converter (default)
//   - convert: One conversion, e.g. "unitconv convert 25 celsius fahrenheit"
//   - repl: Line-oriented converter with completion and history
//   - serve: Web front end
//   - categories, units: Browse the unit catalog
//   - journal: List, export and clear journaled conversions
//   - config: Show and edit the configuration file
//   - docs: Render the documentation in the terminal
//
// # Exit Codes
//
//   - 0: Success
//   - 1: Conversion failed or other error
//   - 2: Usage error
//   - 3: Configuration error
//   - 7: Not found
package cli
