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

/* Types */

type SolveResult struct {
	model     *Model
	status    SolveStatus
	objective float64
	primal    []float64 // indexed like model.vars
	duals     []float64 // indexed like model.cons, only set for pure LPs
	hasDuals  bool
}

type SolveStatus int

const (
	SolutionOptimal SolveStatus = iota
	// SolutionSuboptimal is reported when branch-and-bound hits its
	// node limit with an incumbent in hand.
	SolutionSuboptimal
)

// String returns the termination condition as reported to callers.
func (s SolveStatus) String() string {
	switch s {
	case SolutionOptimal:
		return "optimal"
	case SolutionSuboptimal:
		return "suboptimal"
	default:
		return "unknown"
	}
}

type SolveError int

const (
	ErrModelInfeasible SolveError = iota + 1
	ErrModelUnbounded
	ErrNumericalFailure
	ErrNoFeasibleFound
	ErrUserAbort
	ErrDualsUnavailable
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrModelInfeasible:
		return "model is infeasible"
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrNumericalFailure:
		return "numerical failure while solving"
	case ErrNoFeasibleFound:
		return "no feasible solution found"
	case ErrUserAbort:
		return "aborted by user abort function"
	case ErrDualsUnavailable:
		return "dual values are only available for continuous models solved to optimality"
	default:
		panic("unrecognized error")
	}
}

// Status reports if the solution is optimal (SolutionOptimal) or
// not (SolutionSuboptimal)
func (res *SolveResult) Status() SolveStatus {
	return res.status
}

// Value returns the computed value of the given variable for this
// optimization result.
// This is a shorthand for PrimalValue.
func (res *SolveResult) Value(v *Variable) float64 {
	return res.PrimalValue(v)
}

// PrimalValue returns the computed value of the given variable for
// this optimization result.
func (res *SolveResult) PrimalValue(v *Variable) float64 {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	return res.primal[v.index]
}

// DualValue returns the dual value (shadow price) of the given
// constraint in this optimization result.
//
// Duals are defined only for pure LPs solved to optimality; asking for
// one on a model with integer variables, or after a suboptimal
// termination, returns ErrDualsUnavailable.
func (res *SolveResult) DualValue(c *Constraint) (float64, error) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	if !res.hasDuals || res.status != SolutionOptimal {
		return 0, ErrDualsUnavailable
	}
	return res.duals[c.index], nil
}

// ObjectiveValue returns the value of the objective function for
// this optimization result. This value is only optimal if Status
// also returns SolutionOptimal.
func (res *SolveResult) ObjectiveValue() float64 {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	return res.objective
}
