// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is one user's conversion state.
type Session struct {
	id        string
	startTime time.Time
	history   *history.Buffer[convert.Record]
	now       func() time.Time

	mu           sync.Mutex
	lastActivity time.Time
}

// New creates a session with a fresh id and an empty history of the given
// capacity.
func New(historySize int) *Session {
	return newSession(uuid.NewString(), historySize, time.Now)
}

func newSession(id string, historySize int, now func() time.Time) *Session {
	t := now()
	return &Session{
		id:           id,
		startTime:    t,
		lastActivity: t,
		history:      history.New[convert.Record](historySize),
		now:          now,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns when the session was created.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// Duration returns how long the session has existed.
func (s *Session) Duration() time.Duration {
	return s.now().Sub(s.startTime)
}

// Touch records user activity.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = s.now()
}

// IdleTime returns the time since the last activity.
func (s *Session) IdleTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.lastActivity)
}

// Record adds a successful conversion to the history.
func (s *Session) Record(rec convert.Record) {
	s.Touch()
	s.history.Record(rec)
}

// ClearHistory empties the history.
func (s *Session) ClearHistory() {
	s.Touch()
	s.history.Clear()
}

// History returns the conversions, newest first.
func (s *Session) History() []convert.Record {
	return s.history.Snapshot()
}

// HistoryCap returns the history capacity.
func (s *Session) HistoryCap() int {
	return s.history.Cap()
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time view of a session.
type Status struct {
	SessionID    string        `json:"session_id"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
	IdleTime     time.Duration `json:"idle_time"`
	HistoryCount int           `json:"history_count"`
}

// Status returns the current session status.
func (s *Session) Status() Status {
	now := s.now()
	s.mu.Lock()
	idle := now.Sub(s.lastActivity)
	s.mu.Unlock()

	return Status{
		SessionID:    s.id,
		StartTime:    s.startTime,
		Duration:     now.Sub(s.startTime),
		IdleTime:     idle,
		HistoryCount: s.history.Len(),
	}
}
