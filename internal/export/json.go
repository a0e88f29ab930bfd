// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"github.com/jeranaias/unitconv/internal/storage"
)

// JSONExporter exports entries as an indented JSON array. Options are
// accepted for symmetry; the output always holds the complete entries.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	return &JSONExporter{options: opts.withDefaults()}
}

// Export converts entries to JSON. A nil slice exports as [].
func (e *JSONExporter) Export(entries []storage.Entry) ([]byte, error) {
	if entries == nil {
		entries = []storage.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
