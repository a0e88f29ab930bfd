// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/unitconv/internal/history"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Config holds configuration for the session manager.
type Config struct {
	// Timeout is how long a session may stay idle (default: 30 minutes)
	Timeout time.Duration

	// SweepInterval is how often Run removes expired sessions (default: 1 minute)
	SweepInterval time.Duration

	// HistorySize is the history capacity of new sessions (default: 10)
	HistorySize int

	// MaxSessions caps tracked sessions; Create evicts the idlest one when
	// full (default: 10000)
	MaxSessions int
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:       30 * time.Minute,
		SweepInterval: time.Minute,
		HistorySize:   history.DefaultCapacity,
		MaxSessions:   10000,
	}
}

// Manager tracks sessions by id and expires idle ones.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	timeout       time.Duration
	sweepInterval time.Duration
	historySize   int
	maxSessions   int
	now           func() time.Time

	onExpire func(id string)
}

// NewManager creates a session manager. Zero fields in cfg use defaults.
func NewManager(cfg Config) *Manager {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = def.SweepInterval
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = def.HistorySize
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = def.MaxSessions
	}
	return &Manager{
		sessions:      make(map[string]*Session),
		timeout:       cfg.Timeout,
		sweepInterval: cfg.SweepInterval,
		historySize:   cfg.HistorySize,
		maxSessions:   cfg.MaxSessions,
		now:           time.Now,
	}
}

// SetExpireCallback sets a function called with the id of each swept session.
func (m *Manager) SetExpireCallback(fn func(id string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = fn
}

// Create starts a new session. When the manager is full the least
// recently active session is evicted first.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	var evicted string
	if len(m.sessions) >= m.maxSessions {
		idlest := time.Duration(-1)
		for id, s := range m.sessions {
			if idle := s.IdleTime(); idle > idlest {
				idlest, evicted = idle, id
			}
		}
		delete(m.sessions, evicted)
	}
	s := newSession(uuid.NewString(), m.historySize, m.now)
	m.sessions[s.id] = s
	onExpire := m.onExpire
	m.mu.Unlock()

	if evicted != "" {
		log.Printf("SESSION_EVICTED | session=%s max=%d", evicted, m.maxSessions)
		if onExpire != nil {
			onExpire(evicted)
		}
	}
	return s
}

// Get returns a live session and marks it active. Expired sessions are
// removed and reported as missing.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if s.IdleTime() >= m.timeout {
		delete(m.sessions, id)
		return nil, false
	}
	s.Touch()
	return s, true
}

// GetOrCreate returns the session for id, or a new session when id is
// unknown, expired or not a valid uuid. created reports which happened.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

// Delete ends a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// HistorySize returns the history capacity of new sessions.
func (m *Manager) HistorySize() int {
	return m.historySize
}

// Timeout returns the idle timeout.
func (m *Manager) Timeout() time.Duration {
	return m.timeout
}

// Sweep removes expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.IdleTime() >= m.timeout {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	onExpire := m.onExpire
	m.mu.Unlock()

	// Callbacks run outside the lock.
	if onExpire != nil {
		for _, id := range expired {
			onExpire(id)
		}
	}
	return len(expired)
}

// Run sweeps expired sessions until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Printf("SESSION_SWEEP | expired=%d remaining=%d", n, m.Len())
			}
		}
	}
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is sent periodically to refresh session status.
type TickMsg struct {
	Time time.Time
}

// TickCmd returns a command that ticks once a second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return strconv.Itoa(int(d.Seconds())) + "s"
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return strconv.Itoa(mins) + "m"
		}
		return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return strconv.Itoa(hours) + "h"
	}
	return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
}
