// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// serve_cmd.go - Web front end command.
//
// Command: serve
// Short:   Serve the converter page and JSON API
// Aliases: server, web
//
// Flags:
//   --host HOST    Listen address (default: server.host)
//   --port N       Listen port (default: server.port)

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/server"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// serverOptions maps the config and flags onto server options.
func serverOptions(app *App) (server.Options, error) {
	cfg := app.Config
	p := NewArgParser(app.Args.Raw)

	opts := server.Options{
		Host:               p.FlagOrDefault("host", cfg.Server.Host),
		Port:               cfg.Server.Port,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		SessionTimeout:     time.Duration(cfg.Server.SessionTimeoutSecs) * time.Second,
		HistorySize:        cfg.Converter.HistorySize,
		DefaultValue:       cfg.Converter.DefaultValue,
		Version:            Version,
	}

	if p.HasFlag("port") {
		port, err := ParseIntWithValidation(p.Flag("port"), "port")
		if err != nil || port > 65535 {
			return server.Options{}, &ValidationError{
				Field:   "port",
				Value:   p.Flag("port"),
				Reason:  "must be between 1 and 65535",
				Example: "unitconv serve --port 9000",
			}
		}
		opts.Port = port
	}
	return opts, nil
}

// HandleServe handles the "serve" command. It blocks until SIGINT or
// SIGTERM, then shuts down gracefully.
func HandleServe(ctx context.Context, app *App) error {
	opts, err := serverOptions(app)
	if err != nil {
		return err
	}

	srv, err := server.New(app.Service, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.WatchConfig(ctx, func(cfg *config.Config) {
		app.Service.SetPrecision(cfg.Converter.Precision)
	})

	ln, err := net.Listen("tcp", srv.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr(), err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if !app.quiet() {
		fmt.Fprintf(app.Out, "%s http://%s\n", TitleStyle.Render("unitconv serving on"), ln.Addr())
		fmt.Fprintln(app.Out, DimStyle.Render("Press Ctrl+C to stop"))
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("SIGNAL | shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Shutdown is a no-op if Serve has not started yet; closing the
	// listener stops it either way.
	ln.Close()
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
