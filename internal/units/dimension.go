// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"strconv"
	"strings"
)

// Base dimension indexes.
const (
	Length = iota
	Mass
	Time
	Temperature
	Information
	Current
	Substance
	Luminosity

	numBaseDimensions
)

var baseDimensionNames = [numBaseDimensions]string{
	"length",
	"mass",
	"time",
	"temperature",
	"information",
	"current",
	"substance",
	"luminosity",
}

// Dimension is the exponent of each base dimension in a unit.
// The zero value is dimensionless.
type Dimension [numBaseDimensions]int8

// BaseDimension returns the dimension consisting of a single base dimension.
func BaseDimension(index int) Dimension {
	var d Dimension
	if index >= 0 && index < numBaseDimensions {
		d[index] = 1
	}
	return d
}

// MaxExponent bounds the exponent of every base dimension. Results that
// leave [-MaxExponent, MaxExponent] are rejected rather than wrapped.
const MaxExponent = 12

// Mul returns the dimension of a product. It reports false when an
// exponent leaves the allowed range.
func (d Dimension) Mul(o Dimension) (Dimension, bool) {
	var exps [numBaseDimensions]int
	for i := range d {
		exps[i] = int(d[i]) + int(o[i])
	}
	return fromExponents(exps)
}

// Div returns the dimension of a quotient. It reports false when an
// exponent leaves the allowed range.
func (d Dimension) Div(o Dimension) (Dimension, bool) {
	var exps [numBaseDimensions]int
	for i := range d {
		exps[i] = int(d[i]) - int(o[i])
	}
	return fromExponents(exps)
}

// Pow raises every exponent to n. It reports false when an exponent
// leaves the allowed range.
func (d Dimension) Pow(n int) (Dimension, bool) {
	if n < -MaxExponent || n > MaxExponent {
		return Dimension{}, d.IsDimensionless()
	}
	var exps [numBaseDimensions]int
	for i := range d {
		exps[i] = int(d[i]) * n
	}
	return fromExponents(exps)
}

func fromExponents(exps [numBaseDimensions]int) (Dimension, bool) {
	var out Dimension
	for i, e := range exps {
		if e < -MaxExponent || e > MaxExponent {
			return Dimension{}, false
		}
		out[i] = int8(e)
	}
	return out, true
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension the way pint does, e.g. "[length] / [time]".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}

	var num, den []string
	for i, exp := range d {
		switch {
		case exp > 0:
			num = append(num, dimensionTerm(baseDimensionNames[i], int(exp)))
		case exp < 0:
			den = append(den, dimensionTerm(baseDimensionNames[i], int(-exp)))
		}
	}

	var sb strings.Builder
	if len(num) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(num, " * "))
	}
	for _, term := range den {
		sb.WriteString(" / ")
		sb.WriteString(term)
	}
	return sb.String()
}

func dimensionTerm(name string, exp int) string {
	term := "[" + name + "]"
	if exp == 1 {
		return term
	}
	return term + " ** " + strconv.Itoa(exp)
}
