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

package ast

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Native)(nil)
)

// IsNil reports whether e is nil or a nil pointer to an expression node.
func IsNil(e Expr) bool {
	switch e := e.(type) {
	case *Literal:
		return e == nil
	case *Var:
		return e == nil
	case *Call:
		return e == nil
	case *Func:
		return e == nil
	case *Native:
		return e == nil
	}
	return e == nil
}

// Integer literal: `1`
type Literal struct {
	Value int64
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

// Reference to a bound name: `x`
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application: `f x`
type Call struct {
	Func Expr
	Arg  Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Abstraction: `λx.x`
type Func struct {
	Param string
	Body  Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Native is an opaque evaluation hook. Natives only appear as the innermost body of curried
// functions which are already bound in the initial environment; they cannot be typed directly.
type Native struct {
	// Name is printed in place of the hook.
	Name string
	// Apply evaluates the native within an environment where its parameters are bound.
	Apply func(lookup func(name string) (interface{}, bool)) (interface{}, error)
}

// "Native"
func (e *Native) ExprName() string { return "Native" }
