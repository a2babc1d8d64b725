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

package construct

import (
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Types

// Type-variable: `a`
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Type constant: `int`
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Function type: `int -> int`
func TArrow(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Arg: arg, Return: ret}
}

// Curried function type: `int -> int -> int`
//
// The last type is the return type of the innermost arrow. TArrows panics when fewer than two types are given.
func TArrows(ts ...types.Type) *types.Arrow {
	if len(ts) < 2 {
		panic("TArrows requires at least two types")
	}
	t := &types.Arrow{Arg: ts[len(ts)-2], Return: ts[len(ts)-1]}
	for i := len(ts) - 3; i >= 0; i-- {
		t = &types.Arrow{Arg: ts[i], Return: t}
	}
	return t
}

// Expressions:

// Integer literal: `1`
func Lit(value int64) *ast.Literal {
	return &ast.Literal{Value: value}
}

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f x`
func Call(f ast.Expr, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f x y`
func Calls(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `λx.x`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Curried abstraction: `λx.λy.x`
func Funcs(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Func{Param: params[i], Body: body}
	}
	return body
}

// Native evaluation hook
func Native(name string, apply func(lookup func(string) (interface{}, bool)) (interface{}, error)) *ast.Native {
	return &ast.Native{Name: name, Apply: apply}
}
