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
	"errors"
	"math"
)

// intTol is the distance from the nearest integer below which a
// relaxation value counts as integral.
const intTol = 1e-7

// boundTol guards the incumbent comparison against simplex noise.
const boundTol = 1e-9

// subProblem is one node of the branch-and-bound tree: the compiled
// model plus the branching cuts accumulated on the path from the root.
type subProblem struct {
	extra []compiledRow
}

// branch splits a subproblem on a variable with fractional relaxation
// value val into a floor child and a ceil child.
func (sub subProblem) branch(cm *compiledModel, varIdx int, val float64) (down, up subProblem) {
	n := len(cm.cols)
	shift := cm.cols[cm.colsOf[varIdx][0]].shift

	lo := compiledRow{rel: relLE, coef: make([]float64, n), rhs: math.Floor(val) - shift, cons: -1}
	cm.setVarCoef(lo.coef, varIdx, 1)

	hi := compiledRow{rel: relGE, coef: make([]float64, n), rhs: math.Ceil(val) - shift, cons: -1}
	cm.setVarCoef(hi.coef, varIdx, 1)

	down.extra = append(append([]compiledRow(nil), sub.extra...), lo)
	up.extra = append(append([]compiledRow(nil), sub.extra...), hi)
	return down, up
}

// fractionalVar returns the first integrality-constrained variable
// whose relaxation value is not integral, or -1 if the solution
// satisfies all integrality requirements.
func (cm *compiledModel) fractionalVar(x []float64) int {
	for _, vi := range cm.intVars {
		val := cm.varValue(x, vi)
		if math.Abs(val-math.Round(val)) > intTol {
			return vi
		}
	}
	return -1
}

// solveBranchAndBound explores LP relaxations of the model with
// progressively tighter integrality cuts, keeping the best integral
// solution found as the incumbent. Nodes whose relaxation cannot beat
// the incumbent are pruned.
func (model *Model) solveBranchAndBound(ctl *solveControl, cm *compiledModel) (*SolveResult, error) {
	queue := []subProblem{{}}

	var (
		haveIncumbent bool
		bestZ         float64
		bestX         []float64
		limitHit      bool
	)

	for len(queue) > 0 {
		if ctl.aborted() {
			return nil, ctl.ctx.Err()
		}
		if ctl.nodes >= model.nodeLimit {
			limitHit = true
			break
		}
		ctl.nodes++

		var sub subProblem
		sub, queue = queue[0], queue[1:]

		z, x, err := cm.solveRelaxation(sub.extra)
		switch {
		case errors.Is(err, ErrModelInfeasible):
			if ctl.nodes == 1 {
				// infeasible relaxation at the root: the model itself
				// has no feasible solution
				return nil, ErrModelInfeasible
			}
			continue
		case errors.Is(err, ErrModelUnbounded):
			return nil, ErrModelUnbounded
		case err != nil:
			return nil, err
		}

		if haveIncumbent && z >= bestZ-boundTol {
			continue
		}

		vi := cm.fractionalVar(x)
		if vi < 0 {
			bestZ, bestX, haveIncumbent = z, x, true
			ctl.logf("node %d: new incumbent %g", ctl.nodes, cm.objective(z))
			continue
		}

		down, up := sub.branch(cm, vi, cm.varValue(x, vi))
		queue = append(queue, down, up)
	}

	if !haveIncumbent {
		return nil, ErrNoFeasibleFound
	}

	status := SolutionOptimal
	if limitHit {
		ctl.logf("node limit %d reached, reporting incumbent", model.nodeLimit)
		status = SolutionSuboptimal
	}

	return &SolveResult{
		model:     model,
		status:    status,
		objective: cm.objective(bestZ),
		primal:    cm.varValues(bestX),
	}, nil
}
