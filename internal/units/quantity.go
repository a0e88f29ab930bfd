// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"errors"
	"strconv"
)

// Quantity is a magnitude in a unit of a particular registry.
type Quantity struct {
	Magnitude float64
	Unit      Unit

	reg *Registry
}

// To converts the quantity to the unit named by expr.
func (q Quantity) To(expr string) (Quantity, error) {
	if q.reg == nil {
		return Quantity{}, &DefinitionError{Name: q.Unit.Name, Err: errors.New("quantity has no registry")}
	}
	target, err := q.reg.Parse(expr)
	if err != nil {
		return Quantity{}, err
	}
	return q.ToUnit(target)
}

// ToUnit converts the quantity to an already parsed unit.
func (q Quantity) ToUnit(target Unit) (Quantity, error) {
	if !q.Unit.Compatible(target) {
		return Quantity{}, &DimensionalityError{
			From:    q.Unit.Name,
			To:      target.Name,
			FromDim: q.Unit.Dim,
			ToDim:   target.Dim,
		}
	}
	if q.reg != nil && q.reg.library {
		if v, ok := libraryConvert(q.Magnitude, q.Unit.Name, target.Name); ok {
			return Quantity{Magnitude: v, Unit: target, reg: q.reg}, nil
		}
	}
	base := q.Magnitude*q.Unit.Factor + q.Unit.Offset
	return Quantity{
		Magnitude: (base - target.Offset) / target.Factor,
		Unit:      target,
		reg:       q.reg,
	}, nil
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Magnitude, 'g', -1, 64) + " " + q.Unit.Name
}
