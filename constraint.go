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

// Constraint is the handle for a single linear constraint of the form
//   lower <= sum(coefs[i] * vars[i]) <= upper
// It is returned by AddConstraint and identifies the constraint when
// querying dual values from a SolveResult.
type Constraint struct {
	model *Model
	index int
	name  string
	lower float64
	upper float64
	vars  []*Variable
	coefs []float64
}

// Name returns the name attached to the constraint.
func (c *Constraint) Name() string {
	c.model.mu.RLock()
	defer c.model.mu.RUnlock()

	return c.name
}

// Bounds returns the lower and upper bounds of the constraint.
func (c *Constraint) Bounds() (lower, upper float64) {
	c.model.mu.RLock()
	defer c.model.mu.RUnlock()

	return c.lower, c.upper
}
