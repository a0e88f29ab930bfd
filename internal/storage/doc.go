// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the conversion journal for unitconv.
//
// The journal is a SQLite database (pure Go driver) that keeps every
// successful conversion across sessions for later listing and export. It is
// write-only from the point of view of a session: a session's history is
// never loaded from the journal, so every new session starts empty.
//
// # Key Types
//
//   - Journal: SQLite-backed store of conversion entries
//   - Entry: one journaled conversion
//   - SessionSummary: per-session counts for listing
//
// # Usage
//
//	j, err := storage.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer j.Close()
//
//	err = j.Record(ctx, sess.ID(), rec)
//	recent, err := j.Recent(ctx, 20)
//	fmt.Print(storage.FormatTable(recent))
//
// # Storage Location
//
// The default database is ~/.unitconv/journal.db.
package storage
