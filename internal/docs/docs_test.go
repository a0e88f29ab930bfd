// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/catalog"
)

func TestMarkdown(t *testing.T) {
	md := Markdown(catalog.Default().Categories(), 10)

	assert.Contains(t, md, "# Unit Converter")
	assert.Contains(t, md, "the last 10 conversions")
	assert.Contains(t, md, "- Length\n")
	assert.Contains(t, md, "- Data Storage\n")
	assert.Contains(t, md, "Conversion not possible. Please check the units.")
}

func TestRenderTerminal(t *testing.T) {
	out, err := RenderTerminal(Markdown(catalog.Default().Categories(), 10), 60, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Unit Converter")
	assert.Contains(t, out, "Temperature")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("## Categories\n\n- Length\n\n<script>alert(1)</script>\n")
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Categories</h2>")
	assert.Contains(t, html, "<li>Length</li>")
	assert.NotContains(t, html, "<script>")
}
