// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/convert"
)

// =============================================================================
// ENTRY TYPES
// =============================================================================

// Entry is one journaled conversion.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Category  string    `json:"category"`
	Value     float64   `json:"value"`
	From      string    `json:"from"`
	Output    float64   `json:"output"`
	To        string    `json:"to"`
	Precision int       `json:"precision"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryFromRecord builds an entry for rec in the given session.
func EntryFromRecord(sessionID string, rec convert.Record) Entry {
	return Entry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Category:  string(rec.Category),
		Value:     rec.Value,
		From:      rec.From,
		Output:    rec.Output,
		To:        rec.To,
		Precision: rec.Precision,
		Text:      rec.String(),
		CreatedAt: rec.At,
	}
}

// Record converts the entry back into a conversion record.
func (e Entry) Record() convert.Record {
	return convert.Record{
		Category:  catalog.Category(e.Category),
		Value:     e.Value,
		From:      e.From,
		Output:    e.Output,
		To:        e.To,
		Precision: e.Precision,
		At:        e.CreatedAt,
	}
}

// SessionSummary describes the journaled conversions of one session.
type SessionSummary struct {
	SessionID string    `json:"session_id"`
	Count     int       `json:"count"`
	First     time.Time `json:"first"`
	Last      time.Time `json:"last"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrSessionNotFound is returned when a session has no journaled entries.
// Use errors.Is(err, ErrSessionNotFound) to check for this error.
var ErrSessionNotFound = &JournalError{Message: "session not found in journal"}

// ErrClosed is returned by operations on a closed journal.
var ErrClosed = &JournalError{Message: "journal is closed"}

// JournalError represents a journal-related error.
type JournalError struct {
	Message string
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing journal errors.
func (e *JournalError) Is(target error) bool {
	t, ok := target.(*JournalError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// =============================================================================
// JOURNAL
// =============================================================================

// DefaultMaxEntries bounds the journal size; the oldest rows are pruned.
const DefaultMaxEntries = 10000

// Journal is a SQLite-backed conversion journal.
type Journal struct {
	mu         sync.RWMutex
	db         *sql.DB
	path       string
	maxEntries int
	now        func() time.Time
}

// DefaultPath returns ~/.unitconv/journal.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".unitconv", "journal.db"), nil
}

// Open opens (creating if needed) the journal at path.
func Open(path string) (*Journal, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if _, err := db.Exec(InitMetadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize metadata: %w", err)
	}

	return &Journal{
		db:         db,
		path:       path,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// SetMaxEntries changes the retention limit. Zero or less disables pruning.
func (j *Journal) SetMaxEntries(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.maxEntries = n
}

// Close closes the database.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// Record journals a successful conversion for a session.
func (j *Journal) Record(ctx context.Context, sessionID string, rec convert.Record) error {
	return j.Append(ctx, EntryFromRecord(sessionID, rec))
}

// Append inserts an entry, filling in a missing ID or timestamp, and prunes
// the oldest entries beyond the retention limit.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return ErrClosed
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = j.now()
	}
	if e.Text == "" {
		e.Text = e.Record().String()
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO conversions
			(id, session_id, category, value, from_unit, output, to_unit, precision, rendered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.Category, e.Value, e.From, e.Output, e.To,
		e.Precision, e.Text, e.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}

	if j.maxEntries > 0 {
		_, err = j.db.ExecContext(ctx, `
			DELETE FROM conversions WHERE seq NOT IN (
				SELECT seq FROM conversions ORDER BY seq DESC LIMIT ?
			)`, j.maxEntries)
		if err != nil {
			return fmt.Errorf("failed to prune journal: %w", err)
		}
	}
	return nil
}

const selectEntries = `
	SELECT id, session_id, category, value, from_unit, output, to_unit, precision, rendered, created_at
	FROM conversions`

// Recent returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	return j.query(ctx, selectEntries+` ORDER BY seq DESC LIMIT ?`, limit)
}

// BySession returns a session's entries, newest first.
func (j *Journal) BySession(ctx context.Context, sessionID string) ([]Entry, error) {
	entries, err := j.query(ctx, selectEntries+` WHERE session_id = ? ORDER BY seq DESC`, sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrSessionNotFound
	}
	return entries, nil
}

// Sessions summarizes the journaled sessions, most recently active first.
func (j *Journal) Sessions(ctx context.Context) ([]SessionSummary, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.db == nil {
		return nil, ErrClosed
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT session_id, COUNT(*), MIN(created_at), MAX(created_at)
		FROM conversions
		GROUP BY session_id
		ORDER BY MAX(seq) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		var first, last int64
		if err := rows.Scan(&s.SessionID, &s.Count, &first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.First = time.Unix(0, first)
		s.Last = time.Unix(0, last)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the number of journaled entries.
func (j *Journal) Count(ctx context.Context) (int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.db == nil {
		return 0, ErrClosed
	}

	var n int64
	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (j *Journal) Clear(ctx context.Context) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return 0, ErrClosed
	}

	res, err := j.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear journal: %w", err)
	}
	return res.RowsAffected()
}

func (j *Journal) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.db == nil {
		return nil, ErrClosed
	}

	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Category, &e.Value, &e.From,
			&e.Output, &e.To, &e.Precision, &e.Text, &created); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.CreatedAt = time.Unix(0, created)
		out = append(out, e)
	}
	return out, rows.Err()
}
