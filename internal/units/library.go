// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import gounits "github.com/bcicen/go-units"

// libraryNames maps registry unit names to go-units names. A conversion
// between two listed units runs through go-units; compound expressions,
// prefixed forms and units go-units lacks use the registry factors.
var libraryNames = map[string]string{
	// length
	"meter":      "meter",
	"metre":      "meter",
	"kilometer":  "kilometer",
	"centimeter": "centimeter",
	"millimeter": "millimeter",
	"inch":       "inch",
	"foot":       "foot",
	"yard":       "yard",
	"mile":       "mile",

	// mass
	"gram":      "gram",
	"kilogram":  "kilogram",
	"milligram": "milligram",
	"pound":     "pound",

	// time
	"second": "second",
	"minute": "minute",
	"hour":   "hour",
	"day":    "day",

	// volume
	"liter":      "liter",
	"litre":      "liter",
	"milliliter": "milliliter",
}

// libraryConvert converts magnitude between two named units with go-units.
// It reports false when either unit is not mapped or go-units cannot
// resolve the pair, leaving the caller to use registry factors.
func libraryConvert(magnitude float64, from, to string) (float64, bool) {
	fromName, ok := libraryNames[from]
	if !ok {
		return 0, false
	}
	toName, ok := libraryNames[to]
	if !ok || fromName == toName {
		return 0, false
	}

	fu, err := gounits.Find(fromName)
	if err != nil {
		return 0, false
	}
	tu, err := gounits.Find(toName)
	if err != nil {
		return 0, false
	}
	v, err := gounits.ConvertFloat(magnitude, fu, tu)
	if err != nil {
		return 0, false
	}
	return v.Float(), true
}
