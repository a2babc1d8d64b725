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
	"errors"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/internal/typeutil"
	"github.com/wdamron/lambda/types"
)

// NativeName is reported as the unbound identifier when a native hook is inferred directly.
const NativeName = "$$native"

// generator owns the state of a single inference run.
type generator struct {
	vars    typeutil.VarTracker
	invalid ast.Expr
}

// Replace each quantified type-variable of sc with a fresh type-variable.
func (g *generator) instantiate(sc *types.Scheme) types.Type {
	if sc.IsMonomorphic() {
		return sc.Type
	}
	fresh := make(map[string]types.Type, len(sc.Vars))
	for _, name := range sc.Vars {
		fresh[name] = g.vars.New()
	}
	return types.Apply(types.NewSubst(fresh), sc.Type)
}

func (g *generator) infer(env *TypeEnv, e ast.Expr) (types.Type, Constraints, error) {
	if ast.IsNil(e) {
		return g.unhandled(e)
	}
	switch e := e.(type) {
	case *ast.Literal:
		return types.Int, nil, nil

	case *ast.Native:
		g.invalid = e
		return nil, nil, &UnboundVariableError{Name: NativeName}

	case *ast.Var:
		sc, ok := env.Lookup(e.Name)
		if !ok {
			g.invalid = e
			return nil, nil, &UnboundVariableError{Name: e.Name}
		}
		return g.instantiate(sc), nil, nil

	case *ast.Func:
		tv := g.vars.New()
		ret, cs, err := g.infer(env.Extend(e.Param, types.Monotype(tv)), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return &types.Arrow{Arg: tv, Return: ret}, cs, nil

	case *ast.Call:
		ft, fcs, err := g.infer(env, e.Func)
		if err != nil {
			return nil, nil, err
		}
		at, acs, err := g.infer(env, e.Arg)
		if err != nil {
			return nil, nil, err
		}
		ret := g.vars.New()
		cs := make(Constraints, 0, len(fcs)+len(acs)+1)
		cs = append(cs, fcs...)
		cs = append(cs, acs...)
		cs = append(cs, Constraint{Left: ft, Right: &types.Arrow{Arg: at, Return: ret}, Expr: e})
		return ret, cs, nil
	}
	return g.unhandled(e)
}

func (g *generator) unhandled(e ast.Expr) (types.Type, Constraints, error) {
	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	g.invalid = e
	return nil, nil, errors.New("Unhandled expression " + exprName)
}
