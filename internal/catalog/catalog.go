// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog defines the unit catalog: the categories offered to the
// user and the ordered unit names available in each.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/unitconv/internal/units"
)

// Category names a group of mutually convertible units.
type Category string

// Default categories, in selector order.
const (
	Length      Category = "Length"
	Mass        Category = "Mass"
	Volume      Category = "Volume"
	Time        Category = "Time"
	Temperature Category = "Temperature"
	Speed       Category = "Speed"
	Area        Category = "Area"
	DataStorage Category = "Data Storage"
)

// ErrUnknownCategory is returned for a category not in the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Entry is one category and its units, in display order.
type Entry struct {
	Category Category
	Units    []string
}

// Catalog maps categories to ordered unit names. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	order []Category
	units map[Category][]string
}

var defaultEntries = []Entry{
	{Length, []string{"meter", "kilometer", "centimeter", "millimeter", "mile", "yard", "foot", "inch"}},
	{Mass, []string{"kilogram", "gram", "milligram", "pound", "ounce"}},
	{Volume, []string{"liter", "milliliter", "gallon", "quart", "pint", "cup", "fluid_ounce"}},
	{Time, []string{"second", "minute", "hour", "day"}},
	{Temperature, []string{"celsius", "fahrenheit", "kelvin"}},
	{Speed, []string{"meter/second", "kilometer/hour", "mile/hour"}},
	{Area, []string{"square_meter", "square_kilometer", "square_mile", "acre", "hectare"}},
	{DataStorage, []string{"byte", "kilobyte", "megabyte", "gigabyte", "terabyte"}},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic("catalog: default entries: " + err.Error())
	}
	return c
}

// New builds a catalog from entries, keeping their order.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{units: make(map[Category][]string, len(entries))}
	for _, e := range entries {
		if err := c.add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(e Entry) error {
	name := Category(strings.TrimSpace(string(e.Category)))
	if name == "" {
		return errors.New("category name is empty")
	}
	if _, exists := c.units[name]; exists {
		return fmt.Errorf("category %q is defined twice", name)
	}
	if len(e.Units) == 0 {
		return fmt.Errorf("category %q has no units", name)
	}

	list := make([]string, 0, len(e.Units))
	seen := make(map[string]bool, len(e.Units))
	for _, u := range e.Units {
		u = strings.TrimSpace(u)
		if u == "" {
			return fmt.Errorf("category %q has an empty unit name", name)
		}
		if seen[u] {
			return fmt.Errorf("category %q lists %q twice", name, u)
		}
		seen[u] = true
		list = append(list, u)
	}

	c.order = append(c.order, name)
	c.units[name] = list
	return nil
}

// With returns a new catalog holding c's categories followed by extra.
func (c *Catalog) With(extra []Entry) (*Catalog, error) {
	entries := make([]Entry, 0, len(c.order)+len(extra))
	for _, cat := range c.order {
		entries = append(entries, Entry{Category: cat, Units: c.units[cat]})
	}
	entries = append(entries, extra...)
	return New(entries)
}

// Categories returns the categories in selector order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether the category exists.
func (c *Catalog) Has(category Category) bool {
	_, ok := c.units[category]
	return ok
}

// UnitsFor returns the ordered units of a category.
func (c *Catalog) UnitsFor(category Category) ([]string, error) {
	list, ok := c.units[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Lookup resolves a category name case-insensitively.
func (c *Catalog) Lookup(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, cat := range c.order {
		if strings.EqualFold(string(cat), name) {
			return cat, true
		}
	}
	return "", false
}

// CategoryOf returns the first category that lists unit.
func (c *Catalog) CategoryOf(unit string) (Category, bool) {
	for _, cat := range c.order {
		for _, u := range c.units[cat] {
			if u == unit {
				return cat, true
			}
		}
	}
	return "", false
}

// Validate checks that every unit outside Temperature parses in reg and
// that all units of a category share one dimension. Temperature is
// converted by fixed formulas and is not checked.
func (c *Catalog) Validate(reg *units.Registry) error {
	var errs []error
	for _, cat := range c.order {
		if cat == Temperature {
			continue
		}
		var first *units.Unit
		for _, name := range c.units[cat] {
			u, err := reg.Parse(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("category %q: %w", cat, err))
				continue
			}
			if first == nil {
				first = &u
				continue
			}
			if !first.Compatible(u) {
				errs = append(errs, fmt.Errorf("category %q: %s (%s) is not compatible with %s (%s)",
					cat, name, u.Dim, first.Name, first.Dim))
			}
		}
	}
	return errors.Join(errs...)
}
