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

import "strings"

// Scheme is a type with a list of universally quantified type-variables: `forall a. a -> a`
type Scheme struct {
	Vars []string
	Type Type
}

var _ Substitutable[*Scheme] = (*Scheme)(nil)

// Create a scheme which quantifies over vars.
func NewScheme(vars []string, t Type) *Scheme {
	return &Scheme{Vars: vars, Type: t}
}

// Create a monomorphic scheme (with no quantified type-variables).
func Monotype(t Type) *Scheme { return &Scheme{Type: t} }

// IsMonomorphic reports whether the scheme has no quantified type-variables.
func (sc *Scheme) IsMonomorphic() bool { return len(sc.Vars) == 0 }

// Apply s to the type of the scheme. Quantified type-variables are not substituted.
func (sc *Scheme) Apply(s Subst) *Scheme {
	if s.Len() == 0 {
		return sc
	}
	return &Scheme{Vars: sc.Vars, Type: Apply(s.Without(sc.Vars...), sc.Type)}
}

// FreeVars returns the type-variables of the scheme which are not quantified.
func (sc *Scheme) FreeVars() VarSet {
	return FreeVars(sc.Type).Difference(NewVarSet(sc.Vars...))
}

// String returns `forall a b. <type>` for polymorphic schemes, or the type alone.
func (sc *Scheme) String() string {
	if sc.IsMonomorphic() {
		return TypeString(sc.Type)
	}
	return "forall " + strings.Join(sc.Vars, " ") + ". " + TypeString(sc.Type)
}
