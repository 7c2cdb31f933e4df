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

import "fmt"

type Option func(*Model) error

func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger

		return nil
	}
}

// WithTolerance overrides the simplex pivot tolerance. Zero (the
// default) leaves the choice to the solver.
func WithTolerance(tol float64) Option {
	return func(m *Model) error {
		if tol < 0 {
			return fmt.Errorf("tolerance must be non-negative, got %g", tol)
		}
		m.tolerance = tol

		return nil
	}
}

// WithNodeLimit caps the number of branch-and-bound nodes explored for
// models with integer variables.
func WithNodeLimit(n int) Option {
	return func(m *Model) error {
		if n <= 0 {
			return fmt.Errorf("node limit must be positive, got %d", n)
		}
		m.nodeLimit = n

		return nil
	}
}
