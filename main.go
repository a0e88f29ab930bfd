// unitconv - Convert units across multiple categories from a terminal UI,
// a REPL, one-shot commands or a small web front end.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/unitconv/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdVersion:
		return cli.Fail(cmd, args, cli.HandleVersion(os.Stdout, args))
	case cli.CmdUnknown:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Subcommand)
		cli.PrintUsage(os.Stderr)
		return cli.ExitUsageError
	}

	app, err := cli.Load(args, cli.LogMode(cmd, args))
	if err != nil {
		return cli.Fail(cmd, args, err)
	}
	defer app.Close()

	return cli.Fail(cmd, args, cli.Dispatch(context.Background(), cmd, app))
}
