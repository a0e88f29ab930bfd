// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and top-level dispatch for unitconv.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConvert
	CmdREPL
	CmdServe
	CmdCategories
	CmdUnits
	CmdJournal
	CmdConfig
	CmdDocs
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name used in JSON output.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdConvert:
		return "convert"
	case CmdREPL:
		return "repl"
	case CmdServe:
		return "serve"
	case CmdCategories:
		return "categories"
	case CmdUnits:
		return "units"
	case CmdJournal:
		return "journal"
	case CmdConfig:
		return "config"
	case CmdDocs:
		return "docs"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config PATH
	JSON       bool   // Output in JSON format
	Quiet      bool
	Verbose    bool
	NoJournal  bool // Do not record conversions in the journal
	NoColor    bool

	// Subcommand is the first argument after the command, if any.
	Subcommand string

	// Raw args (remaining after the command and global flags)
	Raw []string
}

const usageText = `unitconv - convert units across multiple categories

Usage:
  unitconv                          Start the terminal UI (default)
  unitconv tui                      Start the terminal UI
  unitconv convert VALUE FROM TO    Convert once and print the result
    --category NAME                 Category to convert in (inferred when omitted)
  unitconv VALUE FROM TO            Shorthand for convert
  unitconv repl                     Interactive converter prompt
  unitconv serve                    Start the web front end
    --host HOST                     Listen address (default: 127.0.0.1)
    --port N                        Listen port (default: 8790)
  unitconv categories               List categories and their units
  unitconv units CATEGORY           List the units of one category
  unitconv journal [subcommand]     Conversion journal
  unitconv config [subcommand]      Configuration
  unitconv docs                     Show the documentation
  unitconv version                  Show version information
  unitconv help                     Show this help

Journal Commands:
  unitconv journal list             Recent conversions (default: 20)
    --limit N                       Show the last N conversions
  unitconv journal sessions         Conversions grouped by session
  unitconv journal show ID          Conversions of one session
  unitconv journal export           Export the journal
    --format json|md|csv            Export format (default: json)
    --output DIR                    Write a file into DIR (default: stdout)
    --session ID                    Export one session only
  unitconv journal clear --confirm  Delete every journaled conversion

Config Commands:
  unitconv config show              Show the effective configuration
  unitconv config get KEY           Show one value (e.g. converter.precision)
  unitconv config set KEY VALUE     Change one value in the config file
  unitconv config path              Show the config file location
  unitconv config init              Write a default config file

REPL Input:
  25 celsius to fahrenheit          Convert (category inferred)
  25 celsius fahrenheit             Same, without "to"
  :history  :clear  :categories  :units CATEGORY  :help  :quit

Global Flags:
  --config PATH     Use this config file
  --json            Output in JSON format
  -q, --quiet       Minimal output
  -v, --verbose     Debug logging
  --no-journal      Do not record conversions
  --no-color        Disable colors (NO_COLOR is also honored)

Examples:
  unitconv convert 25 celsius fahrenheit
  unitconv convert 1 kilometer meter --json
  unitconv 5 gigabyte megabyte
  unitconv units "data storage"
  unitconv journal export --format md --output ./exports
  unitconv config set converter.precision 2
  unitconv serve --port 9000

Version: %s
`

// PrintUsage writes the usage/help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "unitconv version %s\n", Version)
	fmt.Fprintf(w, "  %s %s\n", RenderLabel("Git commit:", 12), ValueStyle.Render(GitCommit))
	fmt.Fprintf(w, "  %s %s\n", RenderLabel("Build date:", 12), ValueStyle.Render(BuildDate))
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]
	parsedArgs.Raw = rest
	if len(rest) > 0 {
		parsedArgs.Subcommand = rest[0]
	}

	switch cmd {
	case "tui", "ui":
		return CmdTUI, parsedArgs

	case "convert", "c":
		return CmdConvert, parsedArgs

	case "repl", "shell":
		return CmdREPL, parsedArgs

	case "serve", "server", "web":
		return CmdServe, parsedArgs

	case "categories", "cats":
		return CmdCategories, parsedArgs

	case "units":
		return CmdUnits, parsedArgs

	case "journal", "j":
		return CmdJournal, parsedArgs

	case "config":
		return CmdConfig, parsedArgs

	case "docs", "guide":
		return CmdDocs, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// "unitconv 25 celsius fahrenheit" is a conversion
		if _, err := strconv.ParseFloat(cmd, 64); err == nil {
			parsedArgs.Raw = remaining
			parsedArgs.Subcommand = remaining[0]
			return CmdConvert, parsedArgs
		}
		parsedArgs.Raw = remaining
		parsedArgs.Subcommand = remaining[0]
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-journal":
			parsedArgs.NoJournal = true
		case "--no-color", "--no-colour":
			parsedArgs.NoColor = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}
