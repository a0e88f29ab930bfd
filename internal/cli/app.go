// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared command state: config, logging, journal and service.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/logging"
	"github.com/jeranaias/unitconv/internal/service"
	"github.com/jeranaias/unitconv/internal/storage"
)

// App holds what every command needs. Build it with Load (or NewApp in
// tests) and Close it when the command returns.
type App struct {
	Args    Args
	Config  *config.Config
	Service *service.Service

	// Journal is nil when journaling is off or the journal failed to open.
	Journal *storage.Journal

	Out io.Writer
	Err io.Writer

	closers []func() error
}

// LogMode picks where logs go when no log file is configured. The server
// logs to stderr; other commands stay quiet unless --verbose is set.
func LogMode(cmd Command, args Args) logging.Mode {
	if cmd == CmdServe || (args.Verbose && cmd != CmdTUI) {
		return logging.ModeStderr
	}
	return logging.ModeDiscard
}

// Load reads the configuration for args, sets up logging and builds the
// app. A broken default config file falls back to defaults with a warning;
// a broken --config file is an error.
func Load(args Args, mode logging.Mode) (*App, error) {
	if args.NoColor {
		ForceColorsEnabled(false)
	}

	cfg, err := config.LoadWithOverride(args.ConfigPath)
	if cfg == nil {
		return nil, err
	}
	if err != nil && !args.Quiet {
		fmt.Fprintf(os.Stderr, "%s %v (using defaults)\n", WarningStyle.Render("Warning:"), err)
	}

	closeLog, err := logging.Setup(logging.Options{
		Path:    cfg.Logging.Path,
		Verbose: args.Verbose || cfg.Logging.Verbose,
		Mode:    mode,
	})
	if err != nil {
		return nil, fmt.Errorf("logging setup: %w", err)
	}

	app, err := NewApp(args, cfg, os.Stdout, os.Stderr)
	if err != nil {
		closeLog()
		return nil, err
	}
	app.closers = append(app.closers, closeLog)
	return app, nil
}

// NewApp builds the journal and service for cfg. A journal that fails to
// open is logged and skipped; conversions still work.
func NewApp(args Args, cfg *config.Config, out, errOut io.Writer) (*App, error) {
	app := &App{
		Args:   args,
		Config: cfg,
		Out:    out,
		Err:    errOut,
	}

	var journal service.Journal
	if cfg.Storage.Enabled && !args.NoJournal {
		j, err := openJournal(cfg)
		if err != nil {
			log.Printf("JOURNAL_OPEN_FAILED | path=%s error=%v", cfg.Storage.Path, err)
			if !args.Quiet {
				fmt.Fprintf(errOut, "%s journal disabled: %v\n", WarningStyle.Render("Warning:"), err)
			}
		} else {
			app.Journal = j
			app.closers = append(app.closers, j.Close)
			journal = j
		}
	}

	svc, err := service.FromConfig(cfg, journal)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("config: %w", err)
	}
	app.Service = svc
	return app, nil
}

func openJournal(cfg *config.Config) (*storage.Journal, error) {
	j, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	j.SetMaxEntries(cfg.Storage.MaxEntries)
	return j, nil
}

// OpenJournal returns the app journal, opening it for reading when
// recording is disabled.
func (a *App) OpenJournal() (*storage.Journal, error) {
	if a.Journal != nil {
		return a.Journal, nil
	}
	j, err := openJournal(a.Config)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	a.Journal = j
	a.closers = append(a.closers, j.Close)
	return j, nil
}

// ConfigFile returns the config file commands read and write: --config,
// else config.toml, else config.json, else the config.toml location.
// exists reports whether the file is on disk.
func (a *App) ConfigFile() (path string, exists bool, err error) {
	if a.Args.ConfigPath != "" {
		_, statErr := os.Stat(a.Args.ConfigPath)
		return a.Args.ConfigPath, statErr == nil, nil
	}

	tomlPath, err := config.ConfigPathTOML()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, true, nil
	}
	if jsonPath, err := config.ConfigPathJSON(); err == nil {
		if _, err := os.Stat(jsonPath); err == nil {
			return jsonPath, true, nil
		}
	}
	return tomlPath, false, nil
}

// WatchConfig calls onReload with each valid new version of the config
// file until ctx is done. Nothing is watched when no file exists.
func (a *App) WatchConfig(ctx context.Context, onReload config.ReloadFunc) {
	path, exists, err := a.ConfigFile()
	if err != nil || !exists {
		return
	}

	w, err := config.NewWatcher(path, onReload, config.WithErrorHandler(func(err error) {
		log.Printf("CONFIG_RELOAD_FAILED | path=%s error=%v", path, err)
	}))
	if err != nil {
		log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", path, err)
		return
	}
	a.closers = append(a.closers, w.Close)
	go w.Run(ctx)
	log.Printf("CONFIG_WATCH | path=%s", path)
}

// Close releases the journal, watchers and log file, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// quiet reports whether decorative output is suppressed.
func (a *App) quiet() bool {
	return a.Args.Quiet || a.Args.JSON
}
