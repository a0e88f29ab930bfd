// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"errors"
	"fmt"
)

// ErrUnits is matched by every error this package returns.
var ErrUnits = errors.New("units error")

// UndefinedUnitError is returned when a name is not in the registry.
type UndefinedUnitError struct {
	Name string
}

func (e *UndefinedUnitError) Error() string {
	return fmt.Sprintf("'%s' is not defined in the unit registry", e.Name)
}

// Is implements errors.Is matching.
func (e *UndefinedUnitError) Is(target error) bool {
	return target == ErrUnits
}

// DimensionalityError is returned when converting between incompatible units.
type DimensionalityError struct {
	From    string
	To      string
	FromDim Dimension
	ToDim   Dimension
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("cannot convert from '%s' (%s) to '%s' (%s)",
		e.From, e.FromDim, e.To, e.ToDim)
}

// Is implements errors.Is matching.
func (e *DimensionalityError) Is(target error) bool {
	return target == ErrUnits
}

// OffsetUnitError is returned when an offset unit is used in a compound
// expression, where its zero point would be ambiguous.
type OffsetUnitError struct {
	Unit string
	Expr string
}

func (e *OffsetUnitError) Error() string {
	return fmt.Sprintf("ambiguous operation with offset unit '%s' in '%s'", e.Unit, e.Expr)
}

// Is implements errors.Is matching.
func (e *OffsetUnitError) Is(target error) bool {
	return target == ErrUnits
}

// ParseError is returned for malformed unit expressions.
type ParseError struct {
	Expr    string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid unit expression '%s' at position %d: %s", e.Expr, e.Pos, e.Message)
}

// Is implements errors.Is matching.
func (e *ParseError) Is(target error) bool {
	return target == ErrUnits
}

// DefinitionError is returned by Define for an invalid definition.
type DefinitionError struct {
	Name string
	Err  error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid definition of '%s': %v", e.Name, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is matching.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrUnits
}
