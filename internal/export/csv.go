// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jeranaias/unitconv/internal/storage"
)

// CSVExporter exports entries as CSV with a header row.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	return &CSVExporter{options: opts.withDefaults()}
}

var csvHeader = []string{"time", "session_id", "category", "value", "from", "output", "to", "text"}

// Export converts entries to CSV.
func (e *CSVExporter) Export(entries []storage.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		row := []string{
			entry.CreatedAt.Format(time.RFC3339),
			entry.SessionID,
			entry.Category,
			strconv.FormatFloat(entry.Value, 'g', -1, 64),
			entry.From,
			strconv.FormatFloat(entry.Output, 'g', -1, 64),
			entry.To,
			entry.Text,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
