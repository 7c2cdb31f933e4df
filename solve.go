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
	"context"
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// dualityGapTol bounds the acceptable mismatch between the primal and
// dual objective values when recovering shadow prices.
const dualityGapTol = 1e-6

func (model *Model) solveLocked(ctx context.Context) (*SolveResult, error) {
	ctl := newSolveControl(ctx, model)
	if ctl.aborted() {
		return nil, ctl.ctx.Err()
	}

	cm, err := model.compile()
	if err != nil {
		return nil, err
	}

	ctl.logf("solving model %q: %d variables, %d constraints", model.name, len(model.vars), len(model.cons))

	if len(cm.intVars) > 0 {
		return model.solveBranchAndBound(ctl, cm)
	}

	z, x, err := cm.solveRelaxation(nil)
	if err != nil {
		return nil, err
	}

	res := &SolveResult{
		model:     model,
		status:    SolutionOptimal,
		objective: cm.objective(z),
		primal:    cm.varValues(x),
	}

	duals, err := cm.solveDuals(z)
	if err != nil {
		return nil, err
	}
	res.duals = duals
	res.hasDuals = true

	ctl.logf("optimal objective %g", res.objective)
	return res, nil
}

// solveRelaxation solves the continuous relaxation of the compiled
// model plus any extra rows (branching cuts). It returns the
// minimization-sense optimum (excluding the objective offset) and the
// column values.
//
// The computational form is first brought to simplex standard form
// (min c'x s.t. Ax = b, x >= 0) by appending one slack or surplus
// column per inequality row. Columns that appear in no row are fixed
// at zero beforehand; the simplex cannot accept all-zero columns.
func (cm *compiledModel) solveRelaxation(extra []compiledRow) (float64, []float64, error) {
	rows := make([]compiledRow, 0, len(cm.rows)+len(extra))
	rows = append(rows, cm.rows...)
	rows = append(rows, extra...)

	n := len(cm.cols)
	active := make([]bool, n)
	for _, r := range rows {
		for j, a := range r.coef {
			if a != 0 {
				active[j] = true
			}
		}
	}

	x := make([]float64, n)
	act := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if active[j] {
			act = append(act, j)
			continue
		}
		if cm.obj[j] < 0 {
			// a negative-cost column outside every row can grow
			// without limit
			return math.Inf(-1), nil, ErrModelUnbounded
		}
	}

	if len(rows) == 0 {
		return 0, x, nil
	}

	nSlack := 0
	for _, r := range rows {
		if r.rel != relEQ {
			nSlack++
		}
	}

	nStd := len(act) + nSlack
	A := mat.NewDense(len(rows), nStd, nil)
	b := make([]float64, len(rows))
	c := make([]float64, nStd)
	for k, j := range act {
		c[k] = cm.obj[j]
	}

	si := len(act)
	for i, r := range rows {
		for k, j := range act {
			if r.coef[j] != 0 {
				A.Set(i, k, r.coef[j])
			}
		}
		b[i] = r.rhs
		switch r.rel {
		case relLE:
			A.Set(i, si, 1)
			si++
		case relGE:
			A.Set(i, si, -1)
			si++
		}
	}

	z, xStd, err := lp.Simplex(c, A, b, cm.tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return 0, nil, ErrModelInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return math.Inf(-1), nil, ErrModelUnbounded
		default:
			return 0, nil, ErrNumericalFailure
		}
	}

	for k, j := range act {
		x[j] = xStd[k]
	}
	return z, x, nil
}

// solveDuals recovers the shadow prices of the model's constraints by
// building and solving the explicit dual of the computational form:
//
//   maximize    b^T y
//   subject to  A^T y <= c
//               y_i <= 0 for <= rows, y_i >= 0 for >= rows, free for = rows
//
// Solving the dual rather than reconstructing a basis from the primal
// solution keeps the result dual-feasible under primal degeneracy. The
// primal optimum zPrimal is used to verify strong duality; a gap means
// the two solves disagree and no meaningful prices exist.
func (cm *compiledModel) solveDuals(zPrimal float64) ([]float64, error) {
	m := len(cm.rows)
	n := len(cm.cols)

	// one dual column per sign-constrained part of y
	type dualCol struct {
		row  int
		sign float64 // y_i contribution of one unit of this column
	}
	var dcols []dualCol
	var dobj []float64
	for i, r := range cm.rows {
		switch r.rel {
		case relLE:
			// y_i = -u_i, u_i >= 0
			dcols = append(dcols, dualCol{i, -1})
			dobj = append(dobj, r.rhs)
		case relGE:
			dcols = append(dcols, dualCol{i, 1})
			dobj = append(dobj, -r.rhs)
		case relEQ:
			// y_i free: y_i = p_i - q_i
			dcols = append(dcols, dualCol{i, 1}, dualCol{i, -1})
			dobj = append(dobj, -r.rhs, r.rhs)
		}
	}

	dual := &compiledModel{
		obj:  dobj,
		cols: make([]column, len(dcols)),
		tol:  cm.tol,
	}
	for i := range dual.cols {
		dual.cols[i] = column{varIdx: -1}
	}

	// one <= row per primal column: sum_i a_ij * y_i <= c_j
	for j := 0; j < n; j++ {
		coef := make([]float64, len(dcols))
		for k, dc := range dcols {
			coef[k] = dc.sign * cm.rows[dc.row].coef[j]
		}
		dual.rows = append(dual.rows, compiledRow{rel: relLE, coef: coef, rhs: cm.obj[j], cons: -1})
	}

	zD, yCols, err := dual.solveRelaxation(nil)
	if err != nil {
		// the dual of a feasible bounded LP is feasible and bounded
		return nil, ErrNumericalFailure
	}

	// minimization-sense dual optimum is -max(b^T y)
	if gap := math.Abs(zD + zPrimal); gap > dualityGapTol*(1+math.Abs(zPrimal)) {
		return nil, ErrNumericalFailure
	}

	y := make([]float64, m)
	for k, dc := range dcols {
		y[dc.row] += dc.sign * yCols[k]
	}

	duals := make([]float64, cm.nCons)
	for i, r := range cm.rows {
		if r.cons < 0 {
			continue
		}
		if cm.negated {
			// prices of the original maximization have opposite sign
			duals[r.cons] -= y[i]
		} else {
			duals[r.cons] += y[i]
		}
	}
	return duals, nil
}
