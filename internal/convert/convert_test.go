// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/units"
)

func newTestConverter(opts ...Option) *Converter {
	return New(units.NewRegistry(), opts...)
}

func TestConvert_Scenarios(t *testing.T) {
	c := newTestConverter()

	tests := []struct {
		name     string
		category catalog.Category
		from, to string
		value    float64
		want     float64
		record   string
	}{
		{"celsius to fahrenheit", catalog.Temperature, "celsius", "fahrenheit", 25, 77.0, "25.0 celsius = 77.0000 fahrenheit"},
		{"kilometer to meter", catalog.Length, "kilometer", "meter", 1, 1000.0, "1.0 kilometer = 1000.0000 meter"},
		{"celsius to kelvin", catalog.Temperature, "celsius", "kelvin", 0, 273.15, "0.0 celsius = 273.1500 kelvin"},
		{"fahrenheit to celsius", catalog.Temperature, "fahrenheit", "celsius", 100, 37.77777777777778, "100.0 fahrenheit = 37.7778 celsius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.category, tt.from, tt.to, tt.value)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)

			rec, err := c.Do(Request{Category: tt.category, From: tt.from, To: tt.to, Value: tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.record, rec.String())
		})
	}
}

func TestConvert_MatchesRegistry(t *testing.T) {
	reg := units.NewRegistry()
	c := New(reg)
	cat := catalog.Default()

	for _, category := range cat.Categories() {
		if category == catalog.Temperature {
			continue
		}
		list, err := cat.UnitsFor(category)
		require.NoError(t, err)

		for _, from := range list {
			for _, to := range list {
				for _, v := range []float64{0, 1, 2.5, 1234.5678} {
					got, err := c.Convert(category, from, to, v)
					require.NoError(t, err, "%s -> %s", from, to)

					want, err := reg.Convert(v, from, to)
					require.NoError(t, err)
					assert.Equal(t, want, got, "%s: %v %s -> %s", category, v, from, to)
				}
			}
		}
	}
}

func TestConvert_TemperatureRoundTrip(t *testing.T) {
	c := newTestConverter()
	pairs := [][2]string{
		{"celsius", "fahrenheit"},
		{"celsius", "kelvin"},
		{"fahrenheit", "kelvin"},
	}

	for _, p := range pairs {
		for _, v := range []float64{0, 1, 25, 37.5, 100, 1000, 12345.678} {
			there, err := c.Convert(catalog.Temperature, p[0], p[1], v)
			require.NoError(t, err)
			back, err := c.Convert(catalog.Temperature, p[1], p[0], there)
			require.NoError(t, err)
			assert.InDelta(t, v, back, 1e-9, "%s -> %s -> %s at %v", p[0], p[1], p[0], v)
		}
	}
}

func TestConvert_TemperaturePassthrough(t *testing.T) {
	c := newTestConverter()

	// Identical and unknown pairs return the input unchanged, never an error.
	got, err := c.Convert(catalog.Temperature, "kelvin", "kelvin", 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = c.Convert(catalog.Temperature, "rankine", "celsius", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestConvert_Failures(t *testing.T) {
	c := newTestConverter()

	_, err := c.Convert(catalog.Length, "meter", "second", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotPossible))
	assert.True(t, errors.Is(err, units.ErrUnits))
	assert.Equal(t, UserMessage, UserFacing(err))

	_, err = c.Convert(catalog.Length, "smoot", "meter", 1)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "smoot", convErr.From)
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		ok   bool
	}{
		{"valid", Request{Category: catalog.Length, From: "meter", To: "foot", Value: 1}, true},
		{"zero", Request{Category: catalog.Length, From: "meter", To: "foot", Value: 0}, true},
		{"negative", Request{Category: catalog.Length, From: "meter", To: "foot", Value: -1}, false},
		{"nan", Request{Category: catalog.Length, From: "meter", To: "foot", Value: math.NaN()}, false},
		{"inf", Request{Category: catalog.Length, From: "meter", To: "foot", Value: math.Inf(1)}, false},
		{"no from", Request{Category: catalog.Length, To: "foot", Value: 1}, false},
		{"no to", Request{Category: catalog.Length, From: "meter", Value: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.NotEqual(t, UserMessage, UserFacing(err))
		})
	}
}

func TestDo_StampsRecord(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	c := newTestConverter(WithPrecision(2), WithClock(func() time.Time { return fixed }))

	rec, err := c.Do(Request{Category: catalog.Mass, From: "pound", To: "kilogram", Value: 1})
	require.NoError(t, err)
	assert.Equal(t, fixed, rec.At)
	assert.Equal(t, 2, rec.Precision)
	assert.Equal(t, "1.0 pound = 0.45 kilogram", rec.String())

	_, err = c.Do(Request{Category: catalog.Mass, From: "pound", To: "kilogram", Value: -3})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		0:       "0.0",
		1:       "1.0",
		25:      "25.0",
		0.1:     "0.1",
		2.5:     "2.5",
		1234.5:  "1234.5",
		0.0001:  "0.0001",
		0.00001: "1e-05",
		1e16:    "1e+16",
		1.5e20:  "1.5e+20",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatValue(in), "FormatValue(%v)", in)
	}
}
