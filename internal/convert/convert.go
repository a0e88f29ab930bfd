// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert turns a category, a pair of unit names and a value into a
// converted magnitude and a formatted conversion record.
//
// Temperature is handled by six fixed formulas. Every other category is
// delegated to the units registry.
package convert

import (
	"time"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/units"
)

// DefaultPrecision is the number of decimals shown for a converted value.
const DefaultPrecision = 4

// temperatureFormulas are keyed by (from, to). Pairs not listed here,
// including identical units, pass the value through unchanged.
var temperatureFormulas = map[[2]string]func(float64) float64{
	{"celsius", "fahrenheit"}: func(v float64) float64 { return v*9/5 + 32 },
	{"fahrenheit", "celsius"}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{"celsius", "kelvin"}:     func(v float64) float64 { return v + 273.15 },
	{"kelvin", "celsius"}:     func(v float64) float64 { return v - 273.15 },
	{"fahrenheit", "kelvin"}:  func(v float64) float64 { return (v-32)*5/9 + 273.15 },
	{"kelvin", "fahrenheit"}:  func(v float64) float64 { return (v-273.15)*9/5 + 32 },
}

// Converter performs conversions against a unit registry.
type Converter struct {
	reg       *units.Registry
	precision int
	now       func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithPrecision sets the decimals used when formatting records.
func WithPrecision(p int) Option {
	return func(c *Converter) {
		if p >= 0 {
			c.precision = p
		}
	}
}

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns a Converter backed by reg.
func New(reg *units.Registry, opts ...Option) *Converter {
	c := &Converter{
		reg:       reg,
		precision: DefaultPrecision,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the underlying unit registry.
func (c *Converter) Registry() *units.Registry {
	return c.reg
}

// Precision returns the decimals used for records.
func (c *Converter) Precision() int {
	return c.precision
}

// Convert converts value from one unit to another within category.
//
// Temperature never fails: an unrecognized pair returns value unchanged.
// For other categories any registry failure is reported as a single
// *ConversionError.
func (c *Converter) Convert(category catalog.Category, from, to string, value float64) (float64, error) {
	if category == catalog.Temperature {
		if f, ok := temperatureFormulas[[2]string{from, to}]; ok {
			return f(value), nil
		}
		return value, nil
	}

	q, err := c.reg.Quantity(value, from)
	if err != nil {
		return 0, &ConversionError{Category: category, From: from, To: to, Err: err}
	}
	out, err := q.To(to)
	if err != nil {
		return 0, &ConversionError{Category: category, From: from, To: to, Err: err}
	}
	return out.Magnitude, nil
}

// Do validates req, converts it and returns the resulting record.
func (c *Converter) Do(req Request) (Record, error) {
	if err := req.Validate(); err != nil {
		return Record{}, err
	}
	out, err := c.Convert(req.Category, req.From, req.To, req.Value)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Category:  req.Category,
		Value:     req.Value,
		From:      req.From,
		Output:    out,
		To:        req.To,
		Precision: c.precision,
		At:        c.now(),
	}, nil
}
