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

/*

Package translp is a library for modeling and solving linear programming
problems in pure Go. The numerical work is delegated to the simplex
implementation in gonum.org/v1/gonum/optimize/convex/lp.

As an example of the API, the model of the following problem:

    Minimize:
      z = 2 x1 + 3 x2
    Subject to:
      x1 + x2 >= 10
      x1 <= 6
      x1, x2 >= 0

can be expressed with translp like this:

	package main

	import (
		"fmt"
		"math"

		"github.com/opensolve/translp"
	)

	func main() {
		model, _ := translp.NewModel("some model", translp.Minimize)
		x1, _ := model.AddDefinedVariable("x1", translp.ContinuousVariable, 2, 0, math.Inf(1))
		x2, _ := model.AddDefinedVariable("x2", translp.ContinuousVariable, 3, 0, math.Inf(1))

		demand, _ := model.AddConstraint(10, math.Inf(1), []*translp.Variable{x1, x2}, []float64{1, 1})
		model.AddConstraint(math.Inf(-1), 6, []*translp.Variable{x1}, []float64{1})

		result, _ := model.Solve() // you should check for errors

		fmt.Printf("solution optimal? %t\n", result.Status() == translp.SolutionOptimal)
		fmt.Printf("z = %f\n", result.ObjectiveValue())
		fmt.Printf("x1 = %f\n", result.Value(x1))
		price, _ := result.DualValue(demand)
		fmt.Printf("shadow price of the demand constraint = %f\n", price)
	}

Dual (shadow price) values are available for continuous models solved to
optimality. For a minimization, the dual of a <= constraint is
nonpositive and the dual of a >= constraint is nonnegative.
*/
package translp

import (
	"context"
	"fmt"
	"math"
	"sync"
)

/* Types */

type Model struct {
	mu        sync.RWMutex
	name      string
	dir       direction
	vars      []*Variable
	cons      []*Constraint
	logger    Logger
	tolerance float64
	nodeLimit int
}

type direction int

const (
	Minimize direction = iota
	Maximize
)

// defaultNodeLimit bounds the branch-and-bound tree for models with
// integer variables. Continuous models are unaffected.
const defaultNodeLimit = 1 << 14

/* Model related functions */

// NewModel instantiates a new linear programming model, providing a
// name (purely informational) and a optimization direction (either
// Minimize or Maximize)
func NewModel(name string, dir direction, opts ...Option) (*Model, error) {
	model := &Model{
		name:      name,
		dir:       dir,
		logger:    noopLogger{},
		nodeLimit: defaultNodeLimit,
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// Clone returns a copy of the model.
func (model *Model) Clone() *Model {
	model.mu.RLock()
	defer model.mu.RUnlock()

	newModel := &Model{
		name:      model.name,
		dir:       model.dir,
		logger:    model.logger,
		tolerance: model.tolerance,
		nodeLimit: model.nodeLimit,
	}

	newModel.vars = make([]*Variable, len(model.vars))
	for i, v := range model.vars {
		newModel.vars[i] = &Variable{
			model:   newModel,
			index:   v.index,
			name:    v.name,
			vartype: v.vartype,
			coef:    v.coef,
			lower:   v.lower,
			upper:   v.upper,
		}
	}

	newModel.cons = make([]*Constraint, len(model.cons))
	for i, c := range model.cons {
		vars := make([]*Variable, len(c.vars))
		for j, v := range c.vars {
			vars[j] = newModel.vars[v.index]
		}
		coefs := make([]float64, len(c.coefs))
		copy(coefs, c.coefs)
		newModel.cons[i] = &Constraint{
			model: newModel,
			index: c.index,
			name:  c.name,
			lower: c.lower,
			upper: c.upper,
			vars:  vars,
			coefs: coefs,
		}
	}

	return newModel
}

// Name returns the name provided upon instantiation of a model
func (model *Model) Name() string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.name
}

// SetDirection changes the direction of the model's optimization
func (model *Model) SetDirection(dir direction) {
	model.mu.Lock()
	defer model.mu.Unlock()

	model.dir = dir
}

// Direction returns the model's current optimization direction
func (model *Model) Direction() direction {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.dir
}

/* Column-related functions */

func (model *Model) VariableCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.vars)
}

// Variables returns a new slice with the model's variables. Changes to
// the slice will not be reflected in the model.
func (model *Model) Variables() []*Variable {
	model.mu.RLock()
	defer model.mu.RUnlock()

	vars := make([]*Variable, len(model.vars))
	copy(vars, model.vars)
	return vars
}

// AddVariable adds a variable to the linear programming model and
// returns a reference to it.
// A freshly instantiated variable has the default type of
// ContinuousVariable, no bounds and an objective coefficient of 1.
//
// A variable is bound to its model. Attempting to use a variable
// created in one model for fetching solutions from a different model
// results in undefined behaviour.
//
// Empty names will automatically replaced by a unique name.
func (model *Model) AddVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, ContinuousVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddBinaryVariable is a convenience function for adding a single
// named binary variable to the model, with a default coefficient of 1.
// Empty names will automatically replaced by a unique name.
func (model *Model) AddBinaryVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, BinaryVariable, 1, 0, 1)
}

// AddIntegerVariable is a convenience function for adding a single
// named unbounded integer variable to the model, with a default
// objective coefficient of 1.
// Empty names will automatically replaced by a unique name.
func (model *Model) AddIntegerVariable(name string) (v *Variable, err error) {
	return model.AddDefinedVariable(name, IntegerVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddDefinedVariable add a variable to the linear programming model
// with its attributes passed as arguments.
// If varType is BinaryVariable, the bounds are ignored.
// Empty names will automatically replaced by a unique name.
func (model *Model) AddDefinedVariable(name string, varType VariableType, coefficient, lowerBound, upperBound float64) (v *Variable, err error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("V%d", len(model.vars))
	}

	v = &Variable{
		model: model,
		index: len(model.vars),
		name:  name,
	}
	model.vars = append(model.vars, v)

	v.setTypeLocked(varType)
	v.coef = coefficient
	if varType != BinaryVariable {
		v.setBoundsLocked(lowerBound, upperBound)
	}

	return v, nil
}

// SetObjectiveFunction defines the objective function for the model as
// a slice of coefficients and a slice of its respective variables.
// E.g.: an objective function of the form 2x+3y is passed as:
//   SetObjectiveFunction([]float64{2,3}, []*Variable{x, y})
// Where x and y are the return values of one of the Add*Variable
// functions.
func (model *Model) SetObjectiveFunction(coefs []float64, vars []*Variable) error {
	if len(coefs) != len(vars) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	for i, v := range vars {
		v.SetObjectiveCoefficient(coefs[i])
	}
	return nil
}

/* Constraint-related functions */

// ConstraintCount returns the number of individual constraints in
// the model
func (model *Model) ConstraintCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.cons)
}

// Constraints returns a new slice with the model's constraints.
func (model *Model) Constraints() []*Constraint {
	model.mu.RLock()
	defer model.mu.RUnlock()

	cons := make([]*Constraint, len(model.cons))
	copy(cons, model.cons)
	return cons
}

// AddConstraint adds a constraint to the model as a lower and an upper
// bounds, a slice of variables and a slice of their respective
// coefficients. The returned Constraint is the handle used to query
// the constraint's dual value after a solve.
//
// An infinite bound leaves the respective side unconstrained; equal
// bounds yield an equality constraint.
func (model *Model) AddConstraint(lower, upper float64, vars []*Variable, coefs []float64) (*Constraint, error) {
	return model.AddNamedConstraint("", lower, upper, vars, coefs)
}

// AddNamedConstraint behaves like AddConstraint but attaches a name to
// the constraint. Empty names will automatically replaced by a unique
// name.
func (model *Model) AddNamedConstraint(name string, lower, upper float64, vars []*Variable, coefs []float64) (*Constraint, error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	if len(vars) != len(coefs) {
		return nil, fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("constraint %q has no variables", name)
	}
	if lower > upper {
		return nil, fmt.Errorf("constraint %q has crossed bounds: %f > %f", name, lower, upper)
	}
	for _, v := range vars {
		if v.model != model {
			return nil, fmt.Errorf("variable %q does not belong to model %q", v.name, model.name)
		}
	}

	if name == "" {
		name = fmt.Sprintf("C%d", len(model.cons))
	}

	c := &Constraint{
		model: model,
		index: len(model.cons),
		name:  name,
		lower: lower,
		upper: upper,
		vars:  append([]*Variable(nil), vars...),
		coefs: append([]float64(nil), coefs...),
	}
	model.cons = append(model.cons, c)

	return c, nil
}

/* Solving */

// Solve attempts to find an optimal solution to the model.
// Information about the solution can be queried from the returned
// SolveResult value.
func (model *Model) Solve() (res *SolveResult, err error) {
	return model.SolveWithContext(context.Background())
}

// SolveWithContext wraps Solve() with a context. If the context is
// cancelled or times out, the solution search will be aborted and the
// context error will be returned. Cancellation is observed between
// simplex invocations; a single simplex run is not interruptible.
func (model *Model) SolveWithContext(ctx context.Context) (res *SolveResult, err error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	return model.solveLocked(ctx)
}
