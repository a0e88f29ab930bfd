// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"testing"

	gounits "github.com/bcicen/go-units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryNames_Resolve(t *testing.T) {
	for name, lib := range libraryNames {
		_, err := gounits.Find(lib)
		assert.NoError(t, err, "%s -> %s", name, lib)
	}
}

func TestConvert_UnmappedUsesRegistry(t *testing.T) {
	reg := NewRegistry()

	_, ok := libraryConvert(1, "fluid_ounce", "milliliter")
	assert.False(t, ok)
	_, ok = libraryConvert(1, "meter/second", "kilometer")
	assert.False(t, ok)

	got, err := reg.Convert(1, "pint", "fluid_ounce")
	require.NoError(t, err)
	assert.InDelta(t, 16.0, got, 1e-9)
}

// Every mapped pair must agree with go-units directly and with the
// registry's own definitions.
func TestConvert_LibraryBacked(t *testing.T) {
	reg := NewRegistry()
	plain := NewRegistry()
	plain.library = false

	pairs := [][2]string{
		{"kilometer", "meter"},
		{"mile", "kilometer"},
		{"foot", "inch"},
		{"yard", "centimeter"},
		{"millimeter", "inch"},
		{"pound", "kilogram"},
		{"gram", "milligram"},
		{"day", "minute"},
		{"hour", "second"},
		{"liter", "milliliter"},
	}
	for _, p := range pairs {
		t.Run(p[0]+"->"+p[1], func(t *testing.T) {
			got, err := reg.Convert(3, p[0], p[1])
			require.NoError(t, err)

			fu, err := gounits.Find(libraryNames[p[0]])
			require.NoError(t, err)
			tu, err := gounits.Find(libraryNames[p[1]])
			require.NoError(t, err)
			direct, err := gounits.ConvertFloat(3, fu, tu)
			require.NoError(t, err)
			assert.Equal(t, direct.Float(), got)

			own, err := plain.Convert(3, p[0], p[1])
			require.NoError(t, err)
			assert.InDelta(t, own, got, 1e-9*max(1, own))
		})
	}
}

func TestConvert_LibraryKeepsRegistryErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Convert(1, "meter", "second")
	var dimErr *DimensionalityError
	require.ErrorAs(t, err, &dimErr)

	got, err := reg.Convert(2, "metre", "meter")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestConvert_DefinedRegistryIgnoresLibrary(t *testing.T) {
	reg := NewEmptyRegistry()
	require.NoError(t, reg.Define(Definition{Name: "meter", Base: BaseDimension(Length)}))
	require.NoError(t, reg.Define(Definition{Name: "mile", Factor: 1000, Reference: "meter"}))

	got, err := reg.Convert(1, "mile", "meter")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}
