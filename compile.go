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

import (
	"fmt"
	"math"
)

type relation int

const (
	relLE relation = iota
	relGE
	relEQ
)

// column is a single nonnegative simplex column together with its
// mapping back to a model variable: the variable's value is
//   shift + x[pos] - x[neg]
// where the neg column only exists for variables without a finite
// lower bound.
type column struct {
	varIdx int
	neg    bool
	shift  float64
}

// compiledRow is one linear row of the computational form,
//   sum(coef[j] * x[j])  rel  rhs
// over nonnegative columns. cons is the index of the originating model
// constraint, or -1 for internal rows (variable bounds, branching
// cuts).
type compiledRow struct {
	rel  relation
	coef []float64
	rhs  float64
	cons int
}

// compiledModel is the minimization-sense computational form of a
// Model: nonnegative columns, relation rows, and a constant objective
// offset picked up by lower-bound substitution.
type compiledModel struct {
	obj     []float64
	offset  float64
	negated bool // objective was negated for a maximization model
	cols    []column
	colsOf  [][]int // variable index -> its column indices
	rows    []compiledRow
	intVars []int // variable indices with an integrality requirement
	nCons   int
	tol     float64
}

// compile translates the model into computational form. Callers must
// hold the model lock.
func (model *Model) compile() (*compiledModel, error) {
	cm := &compiledModel{
		negated: model.dir == Maximize,
		colsOf:  make([][]int, len(model.vars)),
		nCons:   len(model.cons),
		tol:     model.tolerance,
	}

	sign := 1.0
	if cm.negated {
		sign = -1
	}

	type boundRow struct {
		varIdx int
		rhs    float64
	}
	var boundRows []boundRow

	for _, v := range model.vars {
		if v.lower > v.upper {
			return nil, fmt.Errorf("variable %q has crossed bounds: %f > %f", v.name, v.lower, v.upper)
		}

		c := sign * v.coef
		if math.IsInf(v.lower, -1) {
			// free below: split into positive and negative parts
			cm.colsOf[v.index] = []int{len(cm.cols), len(cm.cols) + 1}
			cm.cols = append(cm.cols,
				column{varIdx: v.index},
				column{varIdx: v.index, neg: true},
			)
			cm.obj = append(cm.obj, c, -c)
			if !math.IsInf(v.upper, 1) {
				boundRows = append(boundRows, boundRow{v.index, v.upper})
			}
		} else {
			cm.colsOf[v.index] = []int{len(cm.cols)}
			cm.cols = append(cm.cols, column{varIdx: v.index, shift: v.lower})
			cm.obj = append(cm.obj, c)
			cm.offset += c * v.lower
			if !math.IsInf(v.upper, 1) {
				boundRows = append(boundRows, boundRow{v.index, v.upper - v.lower})
			}
		}

		if v.vartype == IntegerVariable || v.vartype == BinaryVariable {
			cm.intVars = append(cm.intVars, v.index)
		}
	}

	n := len(cm.cols)

	for _, br := range boundRows {
		row := compiledRow{rel: relLE, coef: make([]float64, n), rhs: br.rhs, cons: -1}
		cm.setVarCoef(row.coef, br.varIdx, 1)
		cm.rows = append(cm.rows, row)
	}

	for _, con := range model.cons {
		coef := make([]float64, n)
		rhsAdj := 0.0
		for i, v := range con.vars {
			cm.setVarCoef(coef, v.index, con.coefs[i])
			cols := cm.colsOf[v.index]
			rhsAdj += con.coefs[i] * cm.cols[cols[0]].shift
		}

		switch {
		case math.IsInf(con.lower, -1) && math.IsInf(con.upper, 1):
			// no constraint
		case con.lower == con.upper:
			cm.rows = append(cm.rows, compiledRow{rel: relEQ, coef: coef, rhs: con.upper - rhsAdj, cons: con.index})
		default:
			if !math.IsInf(con.upper, 1) {
				cm.rows = append(cm.rows, compiledRow{rel: relLE, coef: coef, rhs: con.upper - rhsAdj, cons: con.index})
			}
			if !math.IsInf(con.lower, -1) {
				coefGE := coef
				if !math.IsInf(con.upper, 1) {
					// both sides present: the rows must not share
					// backing storage with each other
					coefGE = append([]float64(nil), coef...)
				}
				cm.rows = append(cm.rows, compiledRow{rel: relGE, coef: coefGE, rhs: con.lower - rhsAdj, cons: con.index})
			}
		}
	}

	return cm, nil
}

// setVarCoef adds a per-variable coefficient into a dense column
// vector, accounting for split free variables.
func (cm *compiledModel) setVarCoef(dst []float64, varIdx int, coef float64) {
	cols := cm.colsOf[varIdx]
	dst[cols[0]] += coef
	if len(cols) == 2 {
		dst[cols[1]] -= coef
	}
}

// varValue maps a column solution vector back to the value of one
// model variable.
func (cm *compiledModel) varValue(x []float64, varIdx int) float64 {
	cols := cm.colsOf[varIdx]
	val := cm.cols[cols[0]].shift + x[cols[0]]
	if len(cols) == 2 {
		val -= x[cols[1]]
	}
	return val
}

func (cm *compiledModel) varValues(x []float64) []float64 {
	vals := make([]float64, len(cm.colsOf))
	for i := range vals {
		vals[i] = cm.varValue(x, i)
	}
	return vals
}

// objective converts a minimization-sense simplex optimum back to the
// model's objective value.
func (cm *compiledModel) objective(z float64) float64 {
	val := z + cm.offset
	if cm.negated {
		return -val
	}
	return val
}
