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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	delta = 0.0000001 // acceptable numerical deviation for test results
)

func TestInstantiation(t *testing.T) {
	name := "test model 1"
	model, err := NewModel(name, Maximize)
	require.NoError(t, err)

	assert.Equal(t, name, model.Name())
	assert.Equal(t, Maximize, model.Direction())
}

func TestClone(t *testing.T) {
	name := "test model 1"
	model, err := NewModel(name, Maximize)
	require.NoError(t, err)

	v, err := model.AddDefinedVariable("x", ContinuousVariable, 1, 2, 3)
	require.NoError(t, err)

	_, err = model.AddConstraint(0, 1, []*Variable{v}, []float64{1})
	require.NoError(t, err)

	modelClone := model.Clone()

	assert.Equal(t, model.Name(), modelClone.Name())
	assert.Equal(t, model.Direction(), modelClone.Direction())
	assert.Equal(t, model.VariableCount(), modelClone.VariableCount())
	assert.Equal(t, model.ConstraintCount(), modelClone.ConstraintCount())
}

func TestAddVariableWithDetails(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	v1, err := model.AddDefinedVariable("x", BinaryVariable, 3.1416, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "x", v1.Name())
	assert.Equal(t, BinaryVariable, v1.Type())
	assert.Equal(t, 3.1416, v1.Coefficient())
	l, h := v1.Bounds()
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 1.0, h)

	v2, err := model.AddDefinedVariable("y", ContinuousVariable, -1, math.Inf(-1), 5)
	require.NoError(t, err)

	assert.Equal(t, "y", v2.Name())
	assert.Equal(t, ContinuousVariable, v2.Type())
	assert.Equal(t, -1.0, v2.Coefficient())
	l, h = v2.Bounds()
	assert.Equal(t, math.Inf(-1), l)
	assert.Equal(t, 5.0, h)
}

func TestSetObjectiveFunction(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	v1, _ := model.AddVariable("x")
	v2, _ := model.AddVariable("y")
	v2.SetType(IntegerVariable)
	v3, _ := model.AddVariable("z")
	v3.SetType(BinaryVariable)

	vars := []*Variable{v1, v2, v3}
	coefs := []float64{1.3, 2.7182, 3.1416}
	model.SetObjectiveFunction(coefs, vars)
	for i, coef := range coefs {
		assert.Equal(t, coef, vars[i].Coefficient())
	}
}

func TestAddConstraintValidation(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddVariable("x")

	_, err = model.AddConstraint(0, 1, []*Variable{x}, []float64{1, 2})
	assert.Error(t, err)

	_, err = model.AddConstraint(0, 1, nil, nil)
	assert.Error(t, err)

	_, err = model.AddConstraint(2, 1, []*Variable{x}, []float64{1})
	assert.Error(t, err)

	other, err := NewModel("other", Minimize)
	require.NoError(t, err)
	y, _ := other.AddVariable("y")
	_, err = model.AddConstraint(0, 1, []*Variable{y}, []float64{1})
	assert.Error(t, err)
}

func TestSolveLP(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x1, _ := model.AddDefinedVariable("x1", ContinuousVariable, 1, 0, math.Inf(1))
	x2, _ := model.AddDefinedVariable("x2", ContinuousVariable, 2, 0, math.Inf(1))
	x3, _ := model.AddDefinedVariable("x3", ContinuousVariable, -1, 0, math.Inf(1))

	model.AddConstraint(0, 14, []*Variable{x1, x2, x3}, []float64{2, 1, 1})
	model.AddConstraint(0, 28, []*Variable{x1, x2, x3}, []float64{4, 2, 3})
	model.AddConstraint(0, 30, []*Variable{x1, x2, x3}, []float64{2, 5, 5})

	res, err := model.Solve()
	require.NoError(t, err)

	expected_xs := []float64{5, 4, 0}
	expected_obj := 13.0

	assert.Equal(t, SolutionOptimal, res.Status())

	// ignore numerical inaccuracies
	assert.InDelta(t, expected_obj, res.ObjectiveValue(), delta)

	for i, x := range []*Variable{x1, x2, x3} {
		assert.InDelta(t, expected_xs[i], res.Value(x), delta)
	}
}

func TestSolveMIP(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x1, _ := model.AddDefinedVariable("x1", ContinuousVariable, 1, 0, 40)
	x2, _ := model.AddDefinedVariable("x2", ContinuousVariable, 2, 0, math.Inf(1))
	x3, _ := model.AddDefinedVariable("x3", ContinuousVariable, 3, 0, math.Inf(1))
	x4, _ := model.AddDefinedVariable("x4", IntegerVariable, 1, 2, 3)

	model.AddConstraint(0, 20, []*Variable{x1, x2, x3, x4}, []float64{-1, 1, 1, 10})
	model.AddConstraint(0, 30, []*Variable{x1, x2, x3}, []float64{1, -3, 1})
	model.AddConstraint(0, 0, []*Variable{x2, x4}, []float64{1, -3.5})

	res, err := model.Solve()
	require.NoError(t, err)

	expected_xs := []float64{40, 10.5, 19.5, 3}
	expected_obj := 122.5

	assert.Equal(t, SolutionOptimal, res.Status())

	// ignore numerical inaccuracies
	assert.InDelta(t, expected_obj, res.ObjectiveValue(), delta)

	for i, x := range []*Variable{x1, x2, x3, x4} {
		assert.InDelta(t, expected_xs[i], res.Value(x), delta)
	}
}

func TestSolveMIPBranching(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x1, _ := model.AddDefinedVariable("x1", IntegerVariable, 1, 0, math.Inf(1))
	x2, _ := model.AddDefinedVariable("x2", IntegerVariable, 1, 0, math.Inf(1))

	// relaxation optimum is fractional (sum = 2.5), forcing a branch
	c, err := model.AddConstraint(math.Inf(-1), 5, []*Variable{x1, x2}, []float64{2, 2})
	require.NoError(t, err)

	res, err := model.Solve()
	require.NoError(t, err)

	assert.Equal(t, SolutionOptimal, res.Status())
	assert.InDelta(t, 2.0, res.ObjectiveValue(), delta)

	// shadow prices are undefined for a model with integer variables
	_, err = res.DualValue(c)
	assert.ErrorIs(t, err, ErrDualsUnavailable)
}

func TestSolveInfeasible(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 1, 0, math.Inf(1))
	model.AddConstraint(math.Inf(-1), -1, []*Variable{x}, []float64{1})

	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrModelInfeasible)
}

func TestSolveUnbounded(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x1, _ := model.AddDefinedVariable("x1", ContinuousVariable, 1, 0, math.Inf(1))
	x2, _ := model.AddDefinedVariable("x2", ContinuousVariable, 1, 0, math.Inf(1))
	model.AddConstraint(math.Inf(-1), 1, []*Variable{x1, x2}, []float64{1, -1})

	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrModelUnbounded)
}

func TestSolveFreeVariable(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, err := model.AddVariable("x") // free by default
	require.NoError(t, err)

	model.AddConstraint(-5, math.Inf(1), []*Variable{x}, []float64{1})

	res, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, -5.0, res.ObjectiveValue(), delta)
	assert.InDelta(t, -5.0, res.Value(x), delta)
}

func TestSolveShiftedBounds(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 1, 3, 10)
	y, _ := model.AddDefinedVariable("y", ContinuousVariable, 1, -2, 10)

	model.AddConstraint(math.Inf(-1), 20, []*Variable{x, y}, []float64{1, 1})

	res, err := model.Solve()
	require.NoError(t, err)

	// both variables sit on their lower bounds
	assert.InDelta(t, 1.0, res.ObjectiveValue(), delta)
	assert.InDelta(t, 3.0, res.Value(x), delta)
	assert.InDelta(t, -2.0, res.Value(y), delta)
}

func TestSolveUpperBoundBinding(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 1, 3, 10)

	res, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 10.0, res.ObjectiveValue(), delta)
	assert.InDelta(t, 10.0, res.Value(x), delta)
}

func TestDualValuesEquality(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 1, 0, math.Inf(1))
	y, _ := model.AddDefinedVariable("y", ContinuousVariable, 2, 0, math.Inf(1))

	c, err := model.AddConstraint(5, 5, []*Variable{x, y}, []float64{1, 1})
	require.NoError(t, err)

	res, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res.ObjectiveValue(), delta)

	d, err := res.DualValue(c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, delta)
}

func TestDualValues(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 2, 0, math.Inf(1))
	y, _ := model.AddDefinedVariable("y", ContinuousVariable, 3, 0, math.Inf(1))

	demand, err := model.AddNamedConstraint("demand", 10, math.Inf(1), []*Variable{x, y}, []float64{1, 1})
	require.NoError(t, err)
	capacity, err := model.AddNamedConstraint("capacity", math.Inf(-1), 6, []*Variable{x}, []float64{1})
	require.NoError(t, err)

	res, err := model.Solve()
	require.NoError(t, err)

	assert.Equal(t, SolutionOptimal, res.Status())
	assert.InDelta(t, 24.0, res.ObjectiveValue(), delta)
	assert.InDelta(t, 6.0, res.Value(x), delta)
	assert.InDelta(t, 4.0, res.Value(y), delta)

	// marginal cost of one more unit of demand
	d, err := res.DualValue(demand)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, delta)

	// relaxing the capacity limit saves money, so its price is negative
	d, err = res.DualValue(capacity)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d, delta)
}

func TestDualValuesMaximize(t *testing.T) {
	model, err := NewModel("test", Maximize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 3, 0, math.Inf(1))
	y, _ := model.AddDefinedVariable("y", ContinuousVariable, 2, 0, math.Inf(1))

	c, err := model.AddConstraint(math.Inf(-1), 4, []*Variable{x, y}, []float64{1, 1})
	require.NoError(t, err)

	res, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 12.0, res.ObjectiveValue(), delta)

	d, err := res.DualValue(c)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, delta)
}

func TestContext(t *testing.T) {
	model, err := NewModel("test", Minimize)
	require.NoError(t, err)

	x, _ := model.AddDefinedVariable("x", ContinuousVariable, 1, 0, math.Inf(1))
	model.AddConstraint(1, math.Inf(1), []*Variable{x}, []float64{1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = model.SolveWithContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNodeLimit(t *testing.T) {
	model, err := NewModel("test", Maximize, WithNodeLimit(1))
	require.NoError(t, err)

	x1, _ := model.AddDefinedVariable("x1", IntegerVariable, 1, 0, math.Inf(1))
	x2, _ := model.AddDefinedVariable("x2", IntegerVariable, 1, 0, math.Inf(1))
	model.AddConstraint(math.Inf(-1), 5, []*Variable{x1, x2}, []float64{2, 2})

	// a single node is not enough to resolve the fractional relaxation
	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrNoFeasibleFound)
}
