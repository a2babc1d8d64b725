// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package lambda

import (
	"context"
	"log/slog"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Solve unifies each constraint in order, returning the composed substitution.
//
// Each solved substitution is applied to the remaining constraints before they are unified. If a constraint
// cannot be unified, the expression which produced it is returned along with the error.
func Solve(cs Constraints) (types.Subst, ast.Expr, error) {
	return solve(cs, nil)
}

func solve(cs Constraints, log *slog.Logger) (types.Subst, ast.Expr, error) {
	acc := types.EmptySubst()
	for len(cs) > 0 {
		c := cs[0]
		s, err := Unify(c.Left, c.Right)
		if err != nil {
			return types.Subst{}, c.Expr, err
		}
		if log != nil && log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("solved constraint", "constraint", c.String(), "subst", s.String())
		}
		acc = types.Compose(s, acc)
		cs = cs[1:].Apply(s)
	}
	return acc, nil, nil
}
