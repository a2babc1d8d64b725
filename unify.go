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

// Unify returns the most general substitution which makes a and b equal.
func Unify(a, b types.Type) (types.Subst, error) {
	if types.Equal(a, b) {
		return types.EmptySubst(), nil
	}
	if av, ok := a.(*types.Var); ok {
		return bind(av.Name, b)
	}
	if bv, ok := b.(*types.Var); ok {
		return bind(bv.Name, a)
	}

	switch a := a.(type) {
	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		s1, err := Unify(a.Arg, b.Arg)
		if err != nil {
			return types.Subst{}, err
		}
		s2, err := Unify(types.Apply(s1, a.Return), types.Apply(s1, b.Return))
		if err != nil {
			return types.Subst{}, err
		}
		return types.Compose(s2, s1), nil

	case *types.Const:
		if b, ok := b.(*types.Const); ok && a.Name == b.Name {
			return types.EmptySubst(), nil
		}
	}

	return types.Subst{}, &UnificationError{Left: a, Right: b}
}

func bind(name string, t types.Type) (types.Subst, error) {
	if tv, ok := t.(*types.Var); ok && tv.Name == name {
		return types.EmptySubst(), nil
	}
	if types.FreeVars(t).Contains(name) {
		return types.Subst{}, &InfiniteTypeError{Var: name, Type: t}
	}
	return types.SingletonSubst(name, t), nil
}
