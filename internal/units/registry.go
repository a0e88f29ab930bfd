// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// UNIT
// =============================================================================

// Unit is a resolved unit expression.
//
// A magnitude v in this unit equals v*Factor + Offset in the base units of
// Dim. Offset is non-zero only for shifted temperature scales.
type Unit struct {
	Name   string
	Factor float64
	Offset float64
	Dim    Dimension
}

// IsOffset reports whether the unit has a shifted zero point.
func (u Unit) IsOffset() bool {
	return u.Offset != 0
}

// Compatible reports whether two units share a dimension.
func (u Unit) Compatible(o Unit) bool {
	return u.Dim == o.Dim
}

func (u Unit) mul(o Unit) (Unit, bool) {
	dim, ok := u.Dim.Mul(o.Dim)
	return Unit{Factor: u.Factor * o.Factor, Dim: dim}, ok
}

func (u Unit) div(o Unit) (Unit, bool) {
	dim, ok := u.Dim.Div(o.Dim)
	return Unit{Factor: u.Factor / o.Factor, Dim: dim}, ok
}

func (u Unit) pow(n int) (Unit, bool) {
	dim, ok := u.Dim.Pow(n)
	return Unit{Factor: math.Pow(u.Factor, float64(n)), Dim: dim}, ok
}

// =============================================================================
// DEFINITIONS
// =============================================================================

// Definition describes a named unit.
//
// A unit is either defined in terms of a Reference expression ("1000 meter"
// is Factor 1000, Reference "meter") or, when Reference is empty, directly on
// Base. An empty Reference and a zero Base make a dimensionless unit.
type Definition struct {
	Name      string
	Symbols   []string
	Aliases   []string
	Factor    float64
	Reference string
	Base      Dimension
	Offset    float64
}

type entry struct {
	unit   Unit
	symbol bool
}

type prefix struct {
	text   string
	factor float64
	symbol bool
}

type modifier struct {
	text  string
	power int
}

var modifiers = []modifier{
	{text: "square_", power: 2},
	{text: "cubic_", power: 3},
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds unit definitions and parses unit expressions.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]entry
	names    []string
	prefixes []prefix
	cache    map[string]Unit

	// library routes conversions between mapped names through go-units.
	library bool
}

// NewRegistry returns a registry loaded with the default definitions.
// Conversions between the common named units it shares with go-units
// are computed by go-units.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.library = true
	for _, def := range defaultDefinitions() {
		if err := r.Define(def); err != nil {
			panic("units: default definitions: " + err.Error())
		}
	}
	return r
}

// NewEmptyRegistry returns a registry that knows the prefixes but no units.
func NewEmptyRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		cache:   make(map[string]Unit),
	}
	for _, p := range defaultPrefixes {
		r.prefixes = append(r.prefixes, prefix{text: p.name, factor: p.factor})
		for _, alt := range p.names {
			r.prefixes = append(r.prefixes, prefix{text: alt, factor: p.factor})
		}
		for _, sym := range p.symbols {
			r.prefixes = append(r.prefixes, prefix{text: sym, factor: p.factor, symbol: true})
		}
	}
	// Longest match first so "da" wins over "d".
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].text) > len(r.prefixes[j].text)
	})
	return r
}

// Define adds a unit. Names, symbols and aliases must all be new.
// A zero Factor is treated as 1.
func (r *Registry) Define(def Definition) error {
	name := normalize(def.Name)
	if !isIdentifier(name) {
		return &DefinitionError{Name: def.Name, Err: errors.New("name must be an identifier")}
	}
	factor := def.Factor
	if factor == 0 {
		factor = 1
	}
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return &DefinitionError{Name: name, Err: errors.New("factor must be a positive finite number")}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	unit := Unit{Name: name, Factor: factor, Offset: def.Offset, Dim: def.Base}
	if def.Reference != "" {
		ref, err := r.parseLocked(normalize(def.Reference))
		if err != nil {
			return &DefinitionError{Name: name, Err: err}
		}
		if ref.IsOffset() {
			return &DefinitionError{Name: name, Err: errors.New("reference must not be an offset unit")}
		}
		unit.Factor = factor * ref.Factor
		unit.Dim = ref.Dim
	}

	type key struct {
		text   string
		symbol bool
	}
	keys := []key{{text: name}}
	for _, s := range def.Symbols {
		keys = append(keys, key{text: normalize(s), symbol: true})
	}
	for _, a := range def.Aliases {
		keys = append(keys, key{text: normalize(a)})
	}
	for _, k := range keys {
		if k.text == "" {
			return &DefinitionError{Name: name, Err: errors.New("empty symbol or alias")}
		}
		if _, exists := r.entries[k.text]; exists {
			return &DefinitionError{Name: name, Err: errors.New("'" + k.text + "' is already defined")}
		}
	}
	for _, k := range keys {
		r.entries[k.text] = entry{unit: unit, symbol: k.symbol}
	}
	r.names = append(r.names, name)
	clear(r.cache)
	return nil
}

// Parse resolves a unit expression.
func (r *Registry) Parse(expr string) (Unit, error) {
	normalized := normalize(expr)
	if normalized == "" {
		return Unit{}, &ParseError{Expr: expr, Message: "empty unit expression"}
	}

	r.mu.RLock()
	u, ok := r.cache[normalized]
	if !ok {
		var err error
		u, err = r.parseLocked(normalized)
		if err != nil {
			r.mu.RUnlock()
			return Unit{}, err
		}
	}
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		r.cache[normalized] = u
		r.mu.Unlock()
	}
	return u, nil
}

// IsDefined reports whether expr parses to a unit.
func (r *Registry) IsDefined(expr string) bool {
	_, err := r.Parse(expr)
	return err == nil
}

// Dimensionality returns the dimension of a unit expression.
func (r *Registry) Dimensionality(expr string) (Dimension, error) {
	u, err := r.Parse(expr)
	if err != nil {
		return Dimension{}, err
	}
	return u.Dim, nil
}

// Names returns the canonical unit names in definition order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Quantity pairs a magnitude with a parsed unit.
func (r *Registry) Quantity(magnitude float64, expr string) (Quantity, error) {
	u, err := r.Parse(expr)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Magnitude: magnitude, Unit: u, reg: r}, nil
}

// Convert converts a magnitude between two unit expressions.
func (r *Registry) Convert(magnitude float64, from, to string) (float64, error) {
	q, err := r.Quantity(magnitude, from)
	if err != nil {
		return 0, err
	}
	out, err := q.To(to)
	if err != nil {
		return 0, err
	}
	return out.Magnitude, nil
}

// parseLocked expects r.mu to be held.
func (r *Registry) parseLocked(expr string) (Unit, error) {
	// A bare identifier may be an offset unit; compound expressions may not.
	if u, ok := r.resolve(expr); ok {
		u.Name = expr
		return u, nil
	}
	if isIdentifier(expr) {
		return Unit{}, &UndefinedUnitError{Name: expr}
	}

	p, err := newParser(r, expr)
	if err != nil {
		return Unit{}, err
	}
	u, err := p.parse()
	if err != nil {
		return Unit{}, err
	}
	u.Name = expr
	return u, nil
}

// =============================================================================
// NAME RESOLUTION
// =============================================================================

func (r *Registry) resolve(name string) (Unit, bool) {
	if u, ok := r.resolveName(name); ok {
		return u, true
	}
	if len(name) >= 4 {
		if lower := strings.ToLower(name); lower != name {
			return r.resolveName(lower)
		}
	}
	return Unit{}, false
}

// resolveName tries, in order: an exact entry, a square_/cubic_ modifier,
// a prefixed unit, and a plural of a unit name.
func (r *Registry) resolveName(name string) (Unit, bool) {
	if e, ok := r.entries[name]; ok {
		return e.unit, true
	}

	for _, m := range modifiers {
		rest, ok := strings.CutPrefix(name, m.text)
		if !ok || rest == "" {
			continue
		}
		u, ok := r.resolveName(rest)
		if !ok || u.IsOffset() {
			return Unit{}, false
		}
		return u.pow(m.power)
	}

	if u, _, ok := r.resolvePrefixed(name); ok {
		return u, true
	}

	if stem, ok := strings.CutSuffix(name, "s"); ok && len(stem) >= 3 {
		if e, ok := r.entries[stem]; ok {
			return e.unit, !e.symbol
		}
		if u, symbol, ok := r.resolvePrefixed(stem); ok && !symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// resolvePrefixed matches prefix names with unit names and prefix symbols
// with unit symbols, so "kilometer" and "km" resolve but "kmeter" does not.
func (r *Registry) resolvePrefixed(name string) (Unit, bool, bool) {
	for _, p := range r.prefixes {
		rest, ok := strings.CutPrefix(name, p.text)
		if !ok || rest == "" {
			continue
		}
		e, ok := r.entries[rest]
		if !ok || e.symbol != p.symbol || e.unit.IsOffset() {
			continue
		}
		return Unit{Factor: p.factor * e.unit.Factor, Dim: e.unit.Dim}, p.symbol, true
	}
	return Unit{}, false, false
}

// normalize applies NFKC so "℃", "µs" and "m²" reach the parser in their
// plain forms.
func normalize(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}
