// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server provides the web front end: a server-rendered converter
// page and a small JSON API over the same conversion service.
//
// # Endpoints
//
//   - GET    /                             Converter page
//   - POST   /convert                      Form conversion (303 back to /)
//   - POST   /clear                        Clear history (303 back to /)
//   - GET    /api/categories               Category list
//   - GET    /api/categories/{name}/units  Units of a category
//   - POST   /api/convert                  JSON conversion
//   - GET    /api/history                  Session history
//   - DELETE /api/history                  Clear session history
//   - GET    /health                       Health check
//
// # Sessions
//
// Each browser gets a session cookie (unitconv_session); API clients may
// send X-Session-Id instead. Sessions hold their own history and expire
// after the configured idle timeout. Only the page and the convert
// endpoints start sessions; history reads and clears never do. At most
// Options.MaxSessions are kept, evicting the least recently active.
//
// # Middleware
//
// Requests pass through panic recovery, security headers, request logging
// and, when configured, a per-IP token bucket rate limiter.
//
// # Usage
//
//	srv, err := server.New(svc, server.Options{Port: 8790})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go srv.Start()
//	defer srv.Shutdown(ctx)
package server
