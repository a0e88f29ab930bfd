// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"strconv"
	"strings"

	"github.com/jeranaias/unitconv/internal/util"
)

// =============================================================================
// TABLE FORMATTING
// =============================================================================

const (
	colTime     = 16
	colSession  = 8
	colCategory = 12
	colRule     = 78
)

// FormatTable formats entries as a plain-text table.
func FormatTable(entries []Entry) string {
	if len(entries) == 0 {
		return "No journaled conversions.\n"
	}

	var sb strings.Builder
	rule := strings.Repeat("-", colRule) + "\n"
	sb.WriteString(rule)
	sb.WriteString(util.PadRight("Time", colTime) + " " +
		util.PadRight("Session", colSession) + " " +
		util.PadRight("Category", colCategory) + " Conversion\n")
	sb.WriteString(rule)

	for _, e := range entries {
		sb.WriteString(util.PadRight(e.CreatedAt.Format("2006-01-02 15:04"), colTime) + " " +
			util.PadRight(shortID(e.SessionID), colSession) + " " +
			util.PadRight(e.Category, colCategory) + " " +
			util.Truncate(e.Text, colRule-colTime-colSession-colCategory-3) + "\n")
	}
	return sb.String()
}

// FormatSessions formats session summaries as a plain-text table.
func FormatSessions(sessions []SessionSummary) string {
	if len(sessions) == 0 {
		return "No sessions found.\n"
	}

	var sb strings.Builder
	rule := strings.Repeat("-", 60) + "\n"
	sb.WriteString(rule)
	sb.WriteString(util.PadRight("Session", 36) + " " + util.PadLeft("Count", 5) + " Last\n")
	sb.WriteString(rule)

	for _, s := range sessions {
		sb.WriteString(util.PadRight(s.SessionID, 36) + " " +
			util.PadLeft(strconv.Itoa(s.Count), 5) + " " +
			s.Last.Format("2006-01-02 15:04") + "\n")
	}
	return sb.String()
}

func shortID(id string) string {
	if len(id) > colSession {
		return id[:colSession]
	}
	return id
}
