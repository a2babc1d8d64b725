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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/lambda/types"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from identifiers to type schemes.
//
// Extending a type-environment creates a new environment; the extended environment is never modified.
// A type-environment may be shared across threads.
type TypeEnv struct {
	schemes *immutable.SortedMap
}

var _ types.Substitutable[*TypeEnv] = (*TypeEnv)(nil)

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{emptyEnvMap} }

func (e *TypeEnv) sorted() *immutable.SortedMap {
	if e == nil || e.schemes == nil {
		return emptyEnvMap
	}
	return e.schemes
}

// Get the number of identifiers bound in the type-environment.
func (e *TypeEnv) Len() int { return e.sorted().Len() }

// Lookup the scheme for an identifier.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	sc, ok := e.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return sc.(*types.Scheme), true
}

// Extend returns a type-environment which binds name to sc, replacing any existing binding for name.
// The receiver is not modified.
func (e *TypeEnv) Extend(name string, sc *types.Scheme) *TypeEnv {
	return &TypeEnv{e.sorted().Set(name, sc)}
}

// Declare returns a type-environment which binds name to a scheme quantified over every type-variable in t.
// The receiver is not modified.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.NewScheme(types.FreeVars(t).Sorted(), t))
}

// Remove returns a type-environment without a binding for name. The receiver is not modified.
func (e *TypeEnv) Remove(name string) *TypeEnv {
	return &TypeEnv{e.sorted().Delete(name)}
}

// Iterate over bindings in the type-environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, *types.Scheme) bool) {
	iter := e.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// Apply s to every scheme in the type-environment.
func (e *TypeEnv) Apply(s types.Subst) *TypeEnv {
	if s.Len() == 0 {
		return e
	}
	m := e.sorted()
	e.Range(func(name string, sc *types.Scheme) bool {
		m = m.Set(name, sc.Apply(s))
		return true
	})
	return &TypeEnv{m}
}

// FreeVars returns the free type-variables of every scheme in the type-environment.
func (e *TypeEnv) FreeVars() types.VarSet {
	vs := types.NewVarSet()
	e.Range(func(_ string, sc *types.Scheme) bool {
		vs = vs.Union(sc.FreeVars())
		return true
	})
	return vs
}
