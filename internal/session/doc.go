// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides per-user conversion sessions.
//
// A Session owns one history buffer and tracks activity. The terminal
// front ends hold a single Session; the web server keeps many in a Manager,
// which expires sessions that stay idle longer than the configured timeout.
//
// # Key Types
//
//   - Session: one user's history and activity timestamps
//   - Manager: sessions keyed by id with idle expiry
//   - TickMsg: Bubble Tea message for status refresh
//
// # Usage
//
//	mgr := session.NewManager(session.DefaultConfig())
//	go mgr.Run(ctx)
//
//	sess, created := mgr.GetOrCreate(cookieValue)
//	sess.Record(rec)
//	for _, line := range history.Numbered(sess.History()) {
//	    fmt.Println(line)
//	}
package session
