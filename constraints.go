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
	"strings"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Constraint is a pending equality between two types.
type Constraint struct {
	Left, Right types.Type
	// Expr is the application which produced the constraint.
	Expr ast.Expr
}

// Apply s to both sides of the constraint.
func (c Constraint) Apply(s types.Subst) Constraint {
	return Constraint{Left: types.Apply(s, c.Left), Right: types.Apply(s, c.Right), Expr: c.Expr}
}

// FreeVars returns the type-variables on either side of the constraint.
func (c Constraint) FreeVars() types.VarSet {
	return types.FreeVars(c.Left).Union(types.FreeVars(c.Right))
}

// `a == int -> b`
func (c Constraint) String() string {
	return types.TypeString(c.Left) + " == " + types.TypeString(c.Right)
}

// Constraints are kept in the order they were generated, which is also the order they are solved in.
type Constraints []Constraint

var (
	_ types.Substitutable[Constraint]  = Constraint{}
	_ types.Substitutable[Constraints] = Constraints(nil)
)

// Apply s to every constraint. A new list is returned.
func (cs Constraints) Apply(s types.Subst) Constraints {
	if len(cs) == 0 {
		return cs
	}
	applied := make(Constraints, len(cs))
	for i, c := range cs {
		applied[i] = c.Apply(s)
	}
	return applied
}

// FreeVars returns the type-variables of every constraint.
func (cs Constraints) FreeVars() types.VarSet {
	vs := types.NewVarSet()
	for _, c := range cs {
		vs = vs.Union(c.FreeVars())
	}
	return vs
}

func (cs Constraints) String() string {
	var sb strings.Builder
	for i, c := range cs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
