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

// Command translp solves a transportation problem instance and prints
// the solution report: termination condition, nonzero shipments, dual
// prices and the objective value.
//
// Instances are YAML or JSON files of the form
//
//	capacities: [2, 3, 3]
//	demands: [4, 4]
//	costs:
//	  - [1, 2]
//	  - [2, 2]
//	  - [2, 3]
//
// Without -f the bundled example instance above is solved.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/opensolve/translp"
	"github.com/opensolve/translp/transport"
)

var (
	instanceFile = flag.String("f", "", "instance file (YAML or JSON); empty solves the bundled example")
	verbose      = flag.Bool("v", false, "log solver progress to stderr")
)

// exampleProblem is the classic teaching instance: three factories,
// two warehouses, optimal cost 15.
var exampleProblem = transport.Problem{
	Capacities: []float64{2, 3, 3},
	Demands:    []float64{4, 4},
	Costs: [][]float64{
		{1, 2},
		{2, 2},
		{2, 3},
	},
}

func loadProblem(path string) (transport.Problem, error) {
	var p transport.Problem

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "reading instance file")
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, errors.Wrapf(err, "parsing instance file %s", path)
	}
	return p, nil
}

func run() error {
	p := exampleProblem
	if *instanceFile != "" {
		var err error
		if p, err = loadProblem(*instanceFile); err != nil {
			return err
		}
	}

	var opts []translp.Option
	if *verbose {
		opts = append(opts, translp.WithLogger(log.New(os.Stderr, "solver: ", 0)))
	}

	sol, err := transport.Solve(p, opts...)
	if err != nil {
		return err
	}

	return transport.WriteReport(os.Stdout, p, sol)
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "translp:", err)
		os.Exit(1)
	}
}
