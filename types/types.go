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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	// Types are closed over Const, Var, and Arrow.
	isType()
}

func (t *Const) TypeName() string { return "Const" }
func (t *Var) TypeName() string   { return "Var" }
func (t *Arrow) TypeName() string { return "Arrow" }

func (*Const) isType() {}
func (*Var) isType()   {}
func (*Arrow) isType() {}

// Type constant: `int`
type Const struct {
	Name string
}

// Type-variable: `a`
type Var struct {
	Name string
}

// Function type: `int -> int`
type Arrow struct {
	Arg    Type
	Return Type
}

// Int is the type of integer literals.
var Int = &Const{Name: "int"}

// NewVar creates a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// NewArrow creates a function type from arg to ret.
func NewArrow(arg, ret Type) *Arrow { return &Arrow{Arg: arg, Return: ret} }

// Equal reports whether a and b have the same shape and leaf names.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	}
	return false
}

func (t *Const) String() string { return TypeString(t) }
func (t *Var) String() string   { return TypeString(t) }
func (t *Arrow) String() string { return TypeString(t) }
