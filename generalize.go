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
	"github.com/wdamron/lambda/types"
)

// Generalize quantifies t over the type-variables which are not free in env.
//
// Quantified type-variables are sorted by name.
func Generalize(env *TypeEnv, t types.Type) *types.Scheme {
	vars := types.FreeVars(t).Difference(env.FreeVars()).Sorted()
	return types.NewScheme(vars, t)
}

// Apply s to t, generalize over the empty type-environment, and rename the result.
func closeOver(s types.Subst, t types.Type) *types.Scheme {
	return Rename(Generalize(NewTypeEnv(), types.Apply(s, t)))
}

// Rename the type-variables of sc to `a`, `b`, ... in canonical order.
//
// For an arrow, variables which only appear in the argument come first (in reverse order), followed by
// the variables of the return type. Renaming a renamed scheme returns an equal scheme.
func Rename(sc *types.Scheme) *types.Scheme {
	ordered := collectVars(sc.Type)
	names := make(map[string]types.Type, len(ordered))
	for i, name := range ordered {
		names[name] = types.NewVar(types.VarName(i))
	}
	t := renameType(names, sc.Type)
	if sc.IsMonomorphic() {
		return types.Monotype(t)
	}
	vars := make([]string, 0, len(sc.Vars))
	for _, name := range ordered {
		for _, q := range sc.Vars {
			if q == name {
				vars = append(vars, names[name].(*types.Var).Name)
				break
			}
		}
	}
	return types.NewScheme(vars, t)
}

func renameType(names map[string]types.Type, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		renamed, ok := names[t.Name]
		if !ok {
			panic("unexpected type-variable during renaming: " + t.Name)
		}
		return renamed
	case *types.Arrow:
		return &types.Arrow{Arg: renameType(names, t.Arg), Return: renameType(names, t.Return)}
	}
	return t
}

func collectVars(t types.Type) []string {
	switch t := t.(type) {
	case *types.Var:
		return []string{t.Name}
	case *types.Arrow:
		return joinVars(collectVars(t.Arg), collectVars(t.Return))
	}
	return nil
}

// Prepend each name of left which is not in right, so that left-only names appear in reverse order.
func joinVars(left, right []string) []string {
	var only []string
	for _, name := range left {
		if !containsName(right, name) {
			only = append(only, name)
		}
	}
	joined := make([]string, 0, len(only)+len(right))
	for i := len(only) - 1; i >= 0; i-- {
		joined = append(joined, only[i])
	}
	return append(joined, right...)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
