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

package typeutil

import (
	"github.com/wdamron/lambda/types"
)

// VarTracker allocates uniquely named type-variables for a single inference run.
type VarTracker struct {
	NextId int
	// Reserved names are never allocated, e.g. type-variables which are free in the type-environment.
	Reserved types.VarSet
}

// Reset the tracker to allocate names from the start of the sequence, with no reserved names.
func (vt *VarTracker) Reset() { vt.NextId, vt.Reserved = 0, types.VarSet{} }

// New allocates a fresh type-variable.
func (vt *VarTracker) New() *types.Var {
	name := types.VarName(vt.NextId)
	vt.NextId++
	for vt.Reserved.Contains(name) {
		name = types.VarName(vt.NextId)
		vt.NextId++
	}
	return types.NewVar(name)
}
