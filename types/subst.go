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

package types

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// Subst contains immutable mappings from type-variable names to types.
//
// The zero value is an empty substitution.
type Subst struct {
	m *immutable.SortedMap
}

// Substitutable is implemented by values which may have substitutions applied and which contain
// free type-variables: schemes, type-environments, and constraint lists.
type Substitutable[T any] interface {
	Apply(Subst) T
	FreeVars() VarSet
}

// Create an empty substitution.
func EmptySubst() Subst { return Subst{emptySubstMap} }

// Create a substitution with a single entry.
func SingletonSubst(name string, t Type) Subst {
	return Subst{emptySubstMap.Set(name, t)}
}

// Create a substitution from unscoped mappings.
func NewSubst(m map[string]Type) Subst {
	sm := emptySubstMap
	for name, t := range m {
		sm = sm.Set(name, t)
	}
	return Subst{sm}
}

func (s Subst) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.sorted().Len() }

// Get the type bound to a type-variable name.
func (s Subst) Get(name string) (Type, bool) {
	t, ok := s.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	iter := s.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Without returns a copy of s excluding the given names, without mutating s.
func (s Subst) Without(names ...string) Subst {
	m := s.sorted()
	for _, name := range names {
		m = m.Delete(name)
	}
	return Subst{m}
}

// String returns the entries of s as `{a: int, b: int -> int}`.
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(name string, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// Compose returns a substitution equivalent to applying s2 and then s1.
//
// s1 is applied to every type in s2, and entries from s1 replace entries from s2 with the same name.
func Compose(s1, s2 Subst) Subst {
	m := emptySubstMap
	s2.Range(func(name string, t Type) bool {
		m = m.Set(name, Apply(s1, t))
		return true
	})
	s1.Range(func(name string, t Type) bool {
		m = m.Set(name, t)
		return true
	})
	return Subst{m}
}

// Apply the substitution to t. Types which are unaffected by s are returned as-is.
func Apply(s Subst, t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return apply(s, t)
}

func apply(s Subst, t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Get(t.Name); ok {
			return bound
		}
		return t
	case *Arrow:
		arg, ret := apply(s, t.Arg), apply(s, t.Return)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}
	}
	return t
}

// FreeVars returns the names of all type-variables in t.
func FreeVars(t Type) VarSet {
	vs := NewVarSet()
	collectFreeVars(vs, t)
	return vs
}

func collectFreeVars(vs VarSet, t Type) {
	switch t := t.(type) {
	case *Var:
		vs.s.Insert(t.Name)
	case *Arrow:
		collectFreeVars(vs, t.Arg)
		collectFreeVars(vs, t.Return)
	}
}
