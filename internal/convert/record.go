// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/unitconv/internal/catalog"
)

// Request is one conversion asked for by a user.
type Request struct {
	Category catalog.Category `json:"category"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Value    float64          `json:"value"`
}

// Validate rejects requests that must not reach the converter.
func (r Request) Validate() error {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return &RequestError{Field: "value", Message: "must be a finite number"}
	}
	if r.Value < 0 {
		return &RequestError{Field: "value", Message: "must be zero or greater"}
	}
	if strings.TrimSpace(r.From) == "" {
		return &RequestError{Field: "from", Message: "unit is required"}
	}
	if strings.TrimSpace(r.To) == "" {
		return &RequestError{Field: "to", Message: "unit is required"}
	}
	return nil
}

// Record is a completed conversion.
type Record struct {
	Category  catalog.Category `json:"category"`
	Value     float64          `json:"value"`
	From      string           `json:"from"`
	Output    float64          `json:"output"`
	To        string           `json:"to"`
	Precision int              `json:"precision"`
	At        time.Time        `json:"at"`
}

// String renders "25.0 celsius = 77.0000 fahrenheit".
func (r Record) String() string {
	precision := r.Precision
	if precision < 0 {
		precision = DefaultPrecision
	}
	var sb strings.Builder
	sb.WriteString(FormatValue(r.Value))
	sb.WriteByte(' ')
	sb.WriteString(r.From)
	sb.WriteString(" = ")
	sb.WriteString(strconv.FormatFloat(r.Output, 'f', precision, 64))
	sb.WriteByte(' ')
	sb.WriteString(r.To)
	return sb.String()
}

// FormatValue prints an input value the way users typed it into a float
// field: the shortest exact form, always with a decimal point ("1.0",
// "0.25"), switching to exponent notation outside [1e-4, 1e16).
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
