// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/storage"
)

var fixedNow = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

func sampleEntries() []storage.Entry {
	return []storage.Entry{
		{
			ID: "e2", SessionID: "0123456789", Category: "Volume",
			Value: 2, From: "cup", Output: 1, To: "pint", Precision: 4,
			Text: "2.0 cup = 1.0000 pint", CreatedAt: fixedNow,
		},
		{
			ID: "e1", SessionID: "0123456789", Category: "Volume",
			Value: 1, From: "fluid_ounce", Output: 29.5735, To: "milliliter", Precision: 4,
			Text: "1.0 fluid_ounce = 29.5735 milliliter", CreatedAt: fixedNow.Add(-time.Minute),
		},
	}
}

func testOptions(dir string) *Options {
	return &Options{OutputDir: dir, Title: "My journal", IncludeMetadata: true, Now: func() time.Time { return fixedNow }}
}

func TestJSONExporter(t *testing.T) {
	out, err := NewJSONExporter(nil).Export(sampleEntries())
	require.NoError(t, err)

	var decoded []storage.Entry
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "cup", decoded[0].From)

	empty, err := NewJSONExporter(nil).Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter(testOptions("")).Export(sampleEntries())
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "---\ntitle: My journal\n"))
	assert.Contains(t, md, "conversions: 2")
	assert.Contains(t, md, "# My journal")
	assert.Contains(t, md, "| 1 | 2025-06-01 08:30:00 | `01234567` | Volume | 2.0 cup = 1.0000 pint |")
	assert.Contains(t, md, "fluid_ounce")

	out, err = NewMarkdownExporter(&Options{Title: "x"}).Export(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "_No conversions._")
}

func TestCSVExporter(t *testing.T) {
	out, err := NewCSVExporter(nil).Export(sampleEntries())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "29.5735", rows[2][5])
}

func TestForFormat(t *testing.T) {
	for format, ext := range map[string]string{"json": ".json", "md": ".md", "Markdown": ".md", "csv": ".csv"} {
		exp, err := ForFormat(format, nil)
		require.NoError(t, err, format)
		assert.Equal(t, ext, exp.FileExtension())
	}

	_, err := ForFormat("pdf", nil)
	assert.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)

	path, err := ExportToFile(sampleEntries(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My_journal_20250601_083000.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2.0 cup = 1.0000 pint")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b-c_d", sanitizeFilename("a/b:c d"))
	assert.Equal(t, "journal", sanitizeFilename(""))
}
