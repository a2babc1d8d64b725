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
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// VarSet is a set of type-variable names.
//
// The zero value is an empty set which must not be modified; use NewVarSet to create a mutable set.
type VarSet struct {
	s *set.Set[string]
}

// Create a set containing the given names.
func NewVarSet(names ...string) VarSet {
	s := set.New[string](len(names))
	for _, name := range names {
		s.Insert(name)
	}
	return VarSet{s}
}

// Len returns the number of names in the set.
func (vs VarSet) Len() int {
	if vs.s == nil {
		return 0
	}
	return vs.s.Size()
}

// Contains reports whether name is in the set.
func (vs VarSet) Contains(name string) bool {
	return vs.s != nil && vs.s.Contains(name)
}

// Union returns a new set containing the names of vs and other.
func (vs VarSet) Union(other VarSet) VarSet {
	u := NewVarSet()
	if vs.s != nil {
		u.s.InsertSet(vs.s)
	}
	if other.s != nil {
		u.s.InsertSet(other.s)
	}
	return u
}

// Difference returns a new set containing the names of vs which are not in other.
func (vs VarSet) Difference(other VarSet) VarSet {
	d := NewVarSet()
	if vs.s == nil {
		return d
	}
	d.s.InsertSet(vs.s)
	if other.s != nil {
		d.s.RemoveSet(other.s)
	}
	return d
}

// Sorted returns the names in the set in ascending order.
func (vs VarSet) Sorted() []string {
	if vs.s == nil {
		return nil
	}
	names := vs.s.Slice()
	slices.Sort(names)
	return names
}
