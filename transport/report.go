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

package transport

import (
	"fmt"
	"io"
)

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, args...)
	}
}

// WriteReport renders a human-readable account of a solved instance:
// termination condition, nonzero shipments, dual prices per constraint
// and the objective value.
func WriteReport(w io.Writer, p Problem, s *Solution) error {
	ew := &errWriter{w: w}

	ew.printf("Status: ok\n")
	ew.printf("Termination condition: %s\n\n", s.Termination)

	for f := range s.Shipments {
		for wh, q := range s.Shipments[f] {
			if q == 0 {
				continue
			}
			ew.printf("Transport %g units from factory %d to warehouse %d\n", q, f, wh)
		}
	}
	ew.printf("\n")

	for f, d := range s.CapacityDuals {
		ew.printf("Dual of CapacityCons[%d]: %g\n", f, d)
	}
	for wh, d := range s.DemandDuals {
		ew.printf("Dual of DemandCons[%d]: %g\n", wh, d)
	}

	ew.printf("\nObjective function value: %g\n", s.Objective)

	return ew.err
}
