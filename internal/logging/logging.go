// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the process-wide standard logger.
//
// Events are written with the standard library log package in the
// "EVENT | key=value" form used throughout unitconv:
//
//	log.Printf("CONVERT_OK | session=%s record=%q", id, rec)
//
// Debug events go through Debugf and are dropped unless verbose logging
// is enabled.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Mode selects where log output goes when no file is configured.
type Mode int

const (
	// ModeStderr logs to standard error (CLI and server).
	ModeStderr Mode = iota

	// ModeDiscard drops output (the TUI owns the terminal).
	ModeDiscard
)

// Options configures Setup.
type Options struct {
	// Path is a log file. It overrides Mode when set.
	Path string

	// Verbose enables Debugf output.
	Verbose bool

	// Mode applies when Path is empty.
	Mode Mode
}

var verbose atomic.Bool

// Setup points the standard logger at the configured destination. The
// returned function closes the log file, if any.
func Setup(opts Options) (func() error, error) {
	verbose.Store(opts.Verbose)
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("")

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return func() error {
			log.SetOutput(os.Stderr)
			return f.Close()
		}, nil
	}

	switch opts.Mode {
	case ModeDiscard:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() error { return nil }, nil
}

// Verbose reports whether debug events are enabled.
func Verbose() bool {
	return verbose.Load()
}

// SetVerbose toggles debug events.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Debugf logs a debug event when verbose logging is on.
func Debugf(format string, args ...any) {
	if verbose.Load() {
		log.Printf("DEBUG | "+format, args...)
	}
}
