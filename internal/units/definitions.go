// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import "math"

type prefixDef struct {
	name    string
	names   []string
	symbols []string
	factor  float64
}

var defaultPrefixes = []prefixDef{
	// SI
	{name: "yotta", symbols: []string{"Y"}, factor: 1e24},
	{name: "zetta", symbols: []string{"Z"}, factor: 1e21},
	{name: "exa", symbols: []string{"E"}, factor: 1e18},
	{name: "peta", symbols: []string{"P"}, factor: 1e15},
	{name: "tera", symbols: []string{"T"}, factor: 1e12},
	{name: "giga", symbols: []string{"G"}, factor: 1e9},
	{name: "mega", symbols: []string{"M"}, factor: 1e6},
	{name: "kilo", symbols: []string{"k"}, factor: 1e3},
	{name: "hecto", symbols: []string{"h"}, factor: 1e2},
	{name: "deca", names: []string{"deka"}, symbols: []string{"da"}, factor: 1e1},
	{name: "deci", symbols: []string{"d"}, factor: 1e-1},
	{name: "centi", symbols: []string{"c"}, factor: 1e-2},
	{name: "milli", symbols: []string{"m"}, factor: 1e-3},
	{name: "micro", symbols: []string{"μ", "u"}, factor: 1e-6},
	{name: "nano", symbols: []string{"n"}, factor: 1e-9},
	{name: "pico", symbols: []string{"p"}, factor: 1e-12},
	{name: "femto", symbols: []string{"f"}, factor: 1e-15},
	{name: "atto", symbols: []string{"a"}, factor: 1e-18},
	{name: "zepto", symbols: []string{"z"}, factor: 1e-21},
	{name: "yocto", symbols: []string{"y"}, factor: 1e-24},

	// Binary
	{name: "kibi", symbols: []string{"Ki"}, factor: 1 << 10},
	{name: "mebi", symbols: []string{"Mi"}, factor: 1 << 20},
	{name: "gibi", symbols: []string{"Gi"}, factor: 1 << 30},
	{name: "tebi", symbols: []string{"Ti"}, factor: 1 << 40},
	{name: "pebi", symbols: []string{"Pi"}, factor: 1 << 50},
	{name: "exbi", symbols: []string{"Ei"}, factor: 1 << 60},
	{name: "zebi", symbols: []string{"Zi"}, factor: math.Pow(2, 70)},
	{name: "yobi", symbols: []string{"Yi"}, factor: math.Pow(2, 80)},
}

func sym(s ...string) []string { return s }

// defaultDefinitions returns the built-in vocabulary. Definitions may only
// reference units defined earlier in the list. Exact values follow the
// international definitions (inch, pound, gallon) used by pint.
func defaultDefinitions() []Definition {
	return []Definition{
		// Base units
		{Name: "meter", Symbols: sym("m"), Aliases: sym("metre"), Base: BaseDimension(Length)},
		{Name: "gram", Symbols: sym("g"), Aliases: sym("gramme"), Factor: 1e-3, Base: BaseDimension(Mass)},
		{Name: "second", Symbols: sym("s"), Aliases: sym("sec", "secs"), Base: BaseDimension(Time)},
		{Name: "kelvin", Symbols: sym("K"), Aliases: sym("degK", "°K"), Base: BaseDimension(Temperature)},
		{Name: "bit", Base: BaseDimension(Information)},
		{Name: "ampere", Symbols: sym("A"), Aliases: sym("amp"), Base: BaseDimension(Current)},
		{Name: "mole", Symbols: sym("mol"), Base: BaseDimension(Substance)},
		{Name: "candela", Symbols: sym("cd"), Base: BaseDimension(Luminosity)},

		// Dimensionless
		{Name: "percent", Factor: 0.01},
		{Name: "ppm", Factor: 1e-6},
		{Name: "dozen", Factor: 12},

		// Length
		{Name: "inch", Symbols: sym("in"), Aliases: sym("inches"), Factor: 2.54, Reference: "centimeter"},
		{Name: "foot", Symbols: sym("ft"), Aliases: sym("feet"), Factor: 12, Reference: "inch"},
		{Name: "yard", Symbols: sym("yd"), Factor: 3, Reference: "foot"},
		{Name: "mile", Symbols: sym("mi"), Factor: 1760, Reference: "yard"},
		{Name: "nautical_mile", Symbols: sym("nmi"), Factor: 1852, Reference: "meter"},
		{Name: "angstrom", Symbols: sym("Å"), Factor: 1e-10, Reference: "meter"},
		{Name: "astronomical_unit", Symbols: sym("au"), Factor: 149597870700, Reference: "meter"},
		{Name: "light_year", Symbols: sym("ly"), Aliases: sym("lightyear"), Factor: 9460730472580800, Reference: "meter"},

		// Mass
		{Name: "tonne", Symbols: sym("t"), Aliases: sym("metric_ton"), Factor: 1000, Reference: "kilogram"},
		{Name: "pound", Symbols: sym("lb"), Aliases: sym("lbs"), Factor: 0.45359237, Reference: "kilogram"},
		{Name: "ounce", Symbols: sym("oz"), Factor: 1.0 / 16, Reference: "pound"},
		{Name: "stone", Symbols: sym("st"), Factor: 14, Reference: "pound"},
		{Name: "short_ton", Aliases: sym("ton"), Factor: 2000, Reference: "pound"},
		{Name: "long_ton", Factor: 2240, Reference: "pound"},
		{Name: "grain", Symbols: sym("gr"), Factor: 64.79891, Reference: "milligram"},
		{Name: "carat", Symbols: sym("ct"), Factor: 200, Reference: "milligram"},

		// Time
		{Name: "minute", Symbols: sym("min"), Aliases: sym("mins"), Factor: 60, Reference: "second"},
		{Name: "hour", Symbols: sym("h"), Aliases: sym("hr", "hrs"), Factor: 60, Reference: "minute"},
		{Name: "day", Symbols: sym("d"), Factor: 24, Reference: "hour"},
		{Name: "week", Factor: 7, Reference: "day"},
		{Name: "fortnight", Factor: 14, Reference: "day"},
		{Name: "year", Symbols: sym("yr"), Aliases: sym("julian_year"), Factor: 365.25, Reference: "day"},
		{Name: "month", Factor: 1.0 / 12, Reference: "year"},
		{Name: "decade", Factor: 10, Reference: "year"},
		{Name: "century", Aliases: sym("centuries"), Factor: 100, Reference: "year"},

		// Temperature
		{Name: "degree_Celsius", Aliases: sym("celsius", "degC", "°C"), Reference: "kelvin", Offset: 273.15},
		{Name: "degree_Fahrenheit", Aliases: sym("fahrenheit", "degF", "°F"), Factor: 5.0 / 9, Reference: "kelvin", Offset: 233.15 + 200.0/9},
		{Name: "degree_Rankine", Aliases: sym("rankine", "degR", "°R"), Factor: 5.0 / 9, Reference: "kelvin"},

		// Area
		{Name: "are", Factor: 100, Reference: "meter ** 2"},
		{Name: "hectare", Symbols: sym("ha"), Factor: 100, Reference: "are"},
		{Name: "acre", Symbols: sym("ac"), Factor: 4046.8564224, Reference: "meter ** 2"},

		// Volume
		{Name: "liter", Symbols: sym("l", "L"), Aliases: sym("litre"), Reference: "decimeter ** 3"},
		{Name: "cubic_centimeter", Symbols: sym("cc"), Reference: "centimeter ** 3"},
		{Name: "gallon", Symbols: sym("gal"), Factor: 231, Reference: "inch ** 3"},
		{Name: "quart", Symbols: sym("qt"), Factor: 0.25, Reference: "gallon"},
		{Name: "pint", Symbols: sym("pt"), Factor: 0.5, Reference: "quart"},
		{Name: "cup", Factor: 0.5, Reference: "pint"},
		{Name: "fluid_ounce", Symbols: sym("floz"), Aliases: sym("fl_oz"), Factor: 1.0 / 16, Reference: "pint"},
		{Name: "tablespoon", Symbols: sym("tbsp"), Factor: 0.5, Reference: "fluid_ounce"},
		{Name: "teaspoon", Symbols: sym("tsp"), Factor: 1.0 / 3, Reference: "tablespoon"},
		{Name: "barrel", Symbols: sym("bbl"), Aliases: sym("oil_barrel"), Factor: 42, Reference: "gallon"},
		{Name: "imperial_gallon", Factor: 4.54609, Reference: "liter"},

		// Speed
		{Name: "knot", Symbols: sym("kt"), Aliases: sym("knots"), Reference: "nautical_mile / hour"},
		{Name: "mph", Aliases: sym("MPH"), Reference: "mile / hour"},
		{Name: "kph", Aliases: sym("KPH"), Reference: "kilometer / hour"},
		{Name: "speed_of_light", Symbols: sym("c"), Factor: 299792458, Reference: "meter / second"},

		// Information
		{Name: "byte", Symbols: sym("B"), Aliases: sym("octet"), Factor: 8, Reference: "bit"},

		// Frequency
		{Name: "hertz", Symbols: sym("Hz"), Reference: "1 / second"},
		{Name: "revolutions_per_minute", Symbols: sym("rpm"), Reference: "1 / minute"},

		// Force
		{Name: "newton", Symbols: sym("N"), Reference: "kilogram * meter / second ** 2"},
		{Name: "dyne", Symbols: sym("dyn"), Factor: 1e-5, Reference: "newton"},
		{Name: "pound_force", Symbols: sym("lbf"), Factor: 4.4482216152605, Reference: "newton"},
		{Name: "kilogram_force", Symbols: sym("kgf"), Factor: 9.80665, Reference: "newton"},

		// Pressure
		{Name: "pascal", Symbols: sym("Pa"), Reference: "newton / meter ** 2"},
		{Name: "bar", Factor: 1e5, Reference: "pascal"},
		{Name: "atmosphere", Symbols: sym("atm"), Factor: 101325, Reference: "pascal"},
		{Name: "torr", Factor: 101325.0 / 760, Reference: "pascal"},
		{Name: "psi", Reference: "pound_force / inch ** 2"},

		// Energy
		{Name: "joule", Symbols: sym("J"), Reference: "newton * meter"},
		{Name: "calorie", Symbols: sym("cal"), Factor: 4.184, Reference: "joule"},
		{Name: "electron_volt", Symbols: sym("eV"), Factor: 1.602176634e-19, Reference: "joule"},
		{Name: "british_thermal_unit", Symbols: sym("BTU", "Btu"), Factor: 1055.056, Reference: "joule"},

		// Power
		{Name: "watt", Symbols: sym("W"), Reference: "joule / second"},
		{Name: "horsepower", Symbols: sym("hp"), Factor: 745.69987158227022, Reference: "watt"},
		{Name: "watt_hour", Symbols: sym("Wh"), Reference: "watt * hour"},

		// Electrical
		{Name: "coulomb", Symbols: sym("C"), Reference: "ampere * second"},
		{Name: "volt", Symbols: sym("V"), Reference: "watt / ampere"},
		{Name: "ohm", Symbols: sym("Ω"), Reference: "volt / ampere"},
	}
}
