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
	"fmt"
)

// solveControl carries the per-solve state threaded through the
// backend: the caller's context and the model's logger. The context is
// consulted between simplex invocations, so cancellation takes effect
// at branch-and-bound node granularity.
type solveControl struct {
	ctx    context.Context
	logger Logger
	nodes  int
}

func newSolveControl(ctx context.Context, model *Model) *solveControl {
	return &solveControl{
		ctx:    ctx,
		logger: model.logger,
	}
}

// aborted reports whether the caller gave up on the solve.
func (ctl *solveControl) aborted() bool {
	return ctl.ctx.Err() != nil
}

func (ctl *solveControl) logf(format string, v ...interface{}) {
	ctl.logger.Print(fmt.Sprintf(format, v...))
}
