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
	"fmt"
	"strings"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/construct"
	"github.com/wdamron/lambda/internal/util"
)

// Definition is a named top-level expression.
type Definition struct {
	Name string
	Expr ast.Expr
}

// DefineAll infers each definition within env, in dependency order, and returns a type-environment which
// binds every definition to its generalized type. env is not modified.
//
// Definitions may reference one another in any order. Recursive definitions are rejected.
func DefineAll(env *TypeEnv, defs []Definition) (*TypeEnv, error) {
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, errors.New("Empty name")
		}
		if _, exists := index[def.Name]; exists {
			return nil, fmt.Errorf("duplicate definition %s", def.Name)
		}
		index[def.Name] = i
	}

	deps := util.NewGraph(len(defs))
	for i, def := range defs {
		for _, name := range ast.FreeNames(def.Expr) {
			if j, ok := index[name]; ok {
				deps.AddEdge(i, j)
			}
		}
	}

	for _, scc := range deps.SCC() {
		if len(scc) > 1 || deps.HasEdge(scc[0], scc[0]) {
			names := make([]string, len(scc))
			for i, v := range scc {
				names[len(scc)-1-i] = defs[v].Name
			}
			return nil, fmt.Errorf("recursive definition: %s", strings.Join(names, ", "))
		}
		var err error
		def := defs[scc[0]]
		if env, err = Define(env, def.Name, def.Expr); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// ChurchDefinitions returns Church-encoded booleans, pairs, and lists:
//
//	id    = λx.x
//	True  = λt.λf.t
//	False = λt.λf.f
//	Cons  = λx.λxs.λcc.λcn.cc x xs
//	Nil   = λcc.λcn.cn
//	head  = λxs.xs True ⊥
//	tail  = λxs.xs False ⊥
//	null  = λxs.xs (True (True False)) True
//	pair  = λx.λy.λf.f x y
//	fst   = λp.p True
//	snd   = λp.p False
//
// The definitions of head and tail reference ⊥ (see DefaultPrelude).
func ChurchDefinitions() []Definition {
	x, xs, p := construct.Var("x"), construct.Var("xs"), construct.Var("p")
	True, False := construct.Var("True"), construct.Var("False")
	bottom := construct.Var("⊥")
	return []Definition{
		{"id", construct.Func("x", x)},
		{"True", construct.Funcs([]string{"t", "f"}, construct.Var("t"))},
		{"False", construct.Funcs([]string{"t", "f"}, construct.Var("f"))},
		{"Cons", construct.Funcs([]string{"x", "xs", "cc", "cn"}, construct.Calls(construct.Var("cc"), x, xs))},
		{"Nil", construct.Funcs([]string{"cc", "cn"}, construct.Var("cn"))},
		{"head", construct.Func("xs", construct.Calls(xs, True, bottom))},
		{"tail", construct.Func("xs", construct.Calls(xs, False, bottom))},
		{"null", construct.Func("xs", construct.Calls(xs, construct.Call(True, construct.Call(True, False)), True))},
		{"pair", construct.Funcs([]string{"x", "y", "f"}, construct.Calls(construct.Var("f"), x, construct.Var("y")))},
		{"fst", construct.Func("p", construct.Call(p, True))},
		{"snd", construct.Func("p", construct.Call(p, False))},
	}
}
