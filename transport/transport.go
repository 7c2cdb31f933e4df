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

// Package transport formulates and solves the transportation problem:
// ship goods from factories with fixed capacities to warehouses with
// fixed demands at minimal cost.
//
// The formulation is the textbook linear program
//
//	minimize    sum over f,w of Costs[f][w] * X[f,w]
//	subject to  sum over w of X[f,w] <= Capacities[f]   for every factory f
//	            sum over f of X[f,w] >= Demands[w]      for every warehouse w
//	            X[f,w] >= 0
//
// with the numeric solve delegated to the translp modeling layer. On an
// optimal termination the solution carries the shipment matrix, the
// objective value and the dual prices of both constraint sets.
package transport

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/opensolve/translp"
)

// Problem is one transportation instance. Costs must be a dense
// matrix with one row per factory and one column per warehouse.
//
// The field tags cover both YAML and JSON instance files.
type Problem struct {
	Capacities []float64   `json:"capacities"`
	Demands    []float64   `json:"demands"`
	Costs      [][]float64 `json:"costs"`
}

// DimensionError reports input arrays whose shapes do not agree. It is
// always detected before any solver work starts.
type DimensionError struct {
	Detail string
}

func (e *DimensionError) Error() string {
	return "dimension mismatch: " + e.Detail
}

func dimErrorf(format string, args ...interface{}) *DimensionError {
	return &DimensionError{Detail: fmt.Sprintf(format, args...)}
}

// Validate checks the shape and sign of the problem data.
func (p Problem) Validate() error {
	nF := len(p.Capacities)
	nW := len(p.Demands)

	if nF == 0 {
		return dimErrorf("no factories: capacities list is empty")
	}
	if nW == 0 {
		return dimErrorf("no warehouses: demands list is empty")
	}
	if len(p.Costs) != nF {
		return dimErrorf("cost matrix has %d rows for %d factories", len(p.Costs), nF)
	}
	for f, row := range p.Costs {
		if len(row) != nW {
			return dimErrorf("cost matrix row %d has %d entries for %d warehouses", f, len(row), nW)
		}
	}

	for f, c := range p.Capacities {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.Errorf("capacity of factory %d must be a non-negative number, got %g", f, c)
		}
	}
	for w, dem := range p.Demands {
		if dem < 0 || math.IsNaN(dem) || math.IsInf(dem, 0) {
			return errors.Errorf("demand of warehouse %d must be a non-negative number, got %g", w, dem)
		}
	}

	return nil
}

// Solution holds the post-processed result of one solved instance.
type Solution struct {
	// Shipments[f][w] is the quantity shipped from factory f to
	// warehouse w. Same shape as the cost matrix.
	Shipments [][]float64

	// Objective is the total shipment cost.
	Objective float64

	// CapacityDuals[f] is the shadow price of factory f's capacity
	// limit. Nonpositive: extra capacity can only lower the cost.
	CapacityDuals []float64

	// DemandDuals[w] is the shadow price of warehouse w's demand.
	// Nonnegative: extra demand can only raise the cost.
	DemandDuals []float64

	// Termination is the solver-reported termination condition.
	Termination string
}

// TotalShipped returns the quantity leaving factory f.
func (s *Solution) TotalShipped(f int) float64 {
	var sum float64
	for _, q := range s.Shipments[f] {
		sum += q
	}
	return sum
}

// TotalReceived returns the quantity arriving at warehouse w.
func (s *Solution) TotalReceived(w int) float64 {
	var sum float64
	for f := range s.Shipments {
		sum += s.Shipments[f][w]
	}
	return sum
}

// Solve validates the instance, builds the linear program and runs a
// single solver invocation. A malformed instance surfaces as a
// DimensionError before any solver work; a non-optimal termination
// (for example total demand exceeding total capacity) surfaces as the
// solver's error with instance context attached.
func Solve(p Problem, opts ...translp.Option) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	nF := len(p.Capacities)
	nW := len(p.Demands)

	model, err := translp.NewModel("transportation", translp.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	// decision variables: X[f][w] >= 0, objective coefficient is the
	// unit shipment cost
	X := make([][]*translp.Variable, nF)
	for f := 0; f < nF; f++ {
		X[f] = make([]*translp.Variable, nW)
		for w := 0; w < nW; w++ {
			v, err := model.AddDefinedVariable(
				fmt.Sprintf("X_%d_%d", f, w),
				translp.ContinuousVariable,
				p.Costs[f][w], 0, math.Inf(1),
			)
			if err != nil {
				return nil, errors.Wrapf(err, "adding variable X[%d,%d]", f, w)
			}
			X[f][w] = v
		}
	}

	ones := func(n int) []float64 {
		c := make([]float64, n)
		for i := range c {
			c[i] = 1
		}
		return c
	}

	capacityCons := make([]*translp.Constraint, nF)
	for f := 0; f < nF; f++ {
		c, err := model.AddNamedConstraint(
			fmt.Sprintf("CapacityCons[%d]", f),
			math.Inf(-1), p.Capacities[f],
			X[f], ones(nW),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "adding capacity constraint of factory %d", f)
		}
		capacityCons[f] = c
	}

	demandCons := make([]*translp.Constraint, nW)
	for w := 0; w < nW; w++ {
		col := make([]*translp.Variable, nF)
		for f := 0; f < nF; f++ {
			col[f] = X[f][w]
		}
		c, err := model.AddNamedConstraint(
			fmt.Sprintf("DemandCons[%d]", w),
			p.Demands[w], math.Inf(1),
			col, ones(nF),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "adding demand constraint of warehouse %d", w)
		}
		demandCons[w] = c
	}

	res, err := model.Solve()
	if err != nil {
		return nil, errors.Wrap(err, "solving transportation model")
	}

	sol := &Solution{
		Shipments:     make([][]float64, nF),
		Objective:     res.ObjectiveValue(),
		CapacityDuals: make([]float64, nF),
		DemandDuals:   make([]float64, nW),
		Termination:   res.Status().String(),
	}

	for f := 0; f < nF; f++ {
		sol.Shipments[f] = make([]float64, nW)
		for w := 0; w < nW; w++ {
			sol.Shipments[f][w] = res.Value(X[f][w])
		}
	}

	for f, c := range capacityCons {
		d, err := res.DualValue(c)
		if err != nil {
			return nil, errors.Wrapf(err, "reading dual of capacity constraint %d", f)
		}
		sol.CapacityDuals[f] = d
	}
	for w, c := range demandCons {
		d, err := res.DualValue(c)
		if err != nil {
			return nil, errors.Wrapf(err, "reading dual of demand constraint %d", w)
		}
		sol.DemandDuals[w] = d
	}

	return sol, nil
}
