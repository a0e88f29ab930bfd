// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package units provides a small dimensional-analysis unit registry.
//
// A Registry knows a vocabulary of unit names (with SI and binary prefixes,
// plurals, symbols and the square_/cubic_ modifiers) and can parse unit
// expressions such as "kilometer/hour" or "newton * meter" into a Unit: a
// factor to base units, an optional offset and a Dimension. Quantities of
// the same dimension convert into one another.
//
// # Key Types
//
//   - Registry: unit definitions, prefixes and the expression parser
//   - Unit: a resolved unit expression
//   - Dimension: exponent vector over the base dimensions
//   - Quantity: a magnitude paired with a Unit
//
// # Usage
//
//	reg := units.NewRegistry()
//	q, err := reg.Quantity(1, "kilometer")
//	if err != nil {
//	    return err
//	}
//	m, err := q.To("meter")
//	fmt.Println(m.Magnitude) // 1000
//
// # go-units
//
// Registries from NewRegistry hand conversions between common named units
// (meter, foot, mile, pound, hour, liter and the like) to
// github.com/bcicen/go-units. Everything else, including every compound
// expression, converts with registry factors.
//
// # Exponents
//
// Every base-dimension exponent must stay within [-MaxExponent,
// MaxExponent]; expressions such as "(meter**8)**8" fail with a
// *ParseError.
//
// # Offset Units
//
// Temperature scales with a shifted zero (degree_Celsius, degree_Fahrenheit)
// convert only as plain units. Using one inside a compound expression such
// as "celsius/second" fails with an *OffsetUnitError.
//
// All errors returned by this package match ErrUnits with errors.Is.
package units
