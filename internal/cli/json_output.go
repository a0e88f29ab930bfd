// json_output.go - JSON output for scripting.
//
// Every command accepts --json and prints one JSONResponse envelope.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeranaias/unitconv/internal/storage"
	"github.com/jeranaias/unitconv/internal/ui/components"
)

// JSONResponse is the response envelope for every command.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC 3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := userMessage(err)
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Write outputs the indented response to w. Output to an interactive
// stdout is syntax highlighted.
func (r *JSONResponse) Write(w io.Writer) error {
	out := r.String()
	if shouldHighlight(w) {
		out = components.HighlightJSON(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

func shouldHighlight(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && IsStdoutTTY() && ColorsEnabled()
}

// =============================================================================
// RESPONSE DATA
// =============================================================================

// ConvertData is the data of a convert response.
type ConvertData struct {
	Category  string  `json:"category"`
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Output    float64 `json:"output"`
	Precision int     `json:"precision"`
	Text      string  `json:"text"`
}

// CategoryData lists one category.
type CategoryData struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

// CategoriesData is the data of a categories response.
type CategoriesData struct {
	Categories []CategoryData `json:"categories"`
}

// JournalListData is the data of journal list and show responses.
type JournalListData struct {
	Path    string          `json:"path"`
	Total   int64           `json:"total"`
	Entries []storage.Entry `json:"entries"`
}

// JournalSessionsData is the data of a journal sessions response.
type JournalSessionsData struct {
	Sessions []storage.SessionSummary `json:"sessions"`
}

// JournalExportData is the data of a journal export response.
type JournalExportData struct {
	Format  string `json:"format"`
	Path    string `json:"path,omitempty"`
	Entries int    `json:"entries"`

	// Content holds the export when no output directory is given.
	Content string `json:"content,omitempty"`
}

// JournalClearData is the data of a journal clear response.
type JournalClearData struct {
	Removed int64 `json:"removed"`
}

// ConfigData is the data of a config show response.
type ConfigData struct {
	Path   string      `json:"path"`
	Config interface{} `json:"config"`
}

// ConfigValueData is the data of config get and set responses.
type ConfigValueData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
	Path  string      `json:"path,omitempty"`
}

// VersionData is the data of a version response.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}
