/*
Copyright © 2018-2026 the translp authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package translp

import "math"

type Variable struct {
	model   *Model
	index   int
	name    string
	vartype VariableType
	coef    float64
	lower   float64
	upper   float64
}

type VariableType int

const (
	ContinuousVariable VariableType = iota
	IntegerVariable
	BinaryVariable
)

/* Variable-related functions (model variables, as opposed to Go variables) */

// Name returns the name provided when the variable was added to its
// model.
func (v *Variable) Name() string {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.name
}

// SetType changes the type of the given variable. Setting the type to
// BinaryVariable also fixes the bounds to [0, 1].
func (v *Variable) SetType(vartype VariableType) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.setTypeLocked(vartype)
}

func (v *Variable) setTypeLocked(vartype VariableType) {
	v.vartype = vartype
	if vartype == BinaryVariable {
		v.lower = 0
		v.upper = 1
	}
}

func (v *Variable) Type() VariableType {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.vartype
}

// SetBounds sets the boundaries for the given variable.
// To set a bound to infinity, pass math.Inf(1) or math.Inf(-1). The
// signal of the infinity is ignored, as the lower and upper bounds are
// always assumed to be the negative and positive infinities,
// respectively.
func (v *Variable) SetBounds(lower, upper float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.setBoundsLocked(lower, upper)
}

func (v *Variable) setBoundsLocked(lower, upper float64) {
	if math.IsInf(lower, 0) {
		lower = math.Inf(-1)
	}
	if math.IsInf(upper, 0) {
		upper = math.Inf(1)
	}
	v.lower = lower
	v.upper = upper
}

// Bounds returns the lower and upper bounds of the given variable.
func (v *Variable) Bounds() (lower, upper float64) {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.lower, v.upper
}

// SetObjectiveCoefficient sets the coefficient of the variable in the
// model's objective function.
func (v *Variable) SetObjectiveCoefficient(coef float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.coef = coef
}

// Coefficient returns the coefficient of the variable in the model's
// objective function.
func (v *Variable) Coefficient() float64 {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.coef
}
