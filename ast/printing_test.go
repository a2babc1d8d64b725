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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	f, x := &Var{Name: "f"}, &Var{Name: "x"}
	cases := []struct {
		expr   Expr
		expect string
	}{
		{&Literal{Value: 42}, "42"},
		{&Literal{Value: -1}, "-1"},
		{x, "x"},
		{&Func{Param: "x", Body: x}, "λx.x"},
		{&Call{Func: &Call{Func: f, Arg: x}, Arg: x}, "f x x"},
		{&Call{Func: f, Arg: &Call{Func: f, Arg: x}}, "f (f x)"},
		{&Call{Func: &Func{Param: "x", Body: x}, Arg: &Literal{Value: 1}}, "(λx.x) 1"},
		{&Call{Func: f, Arg: &Func{Param: "x", Body: x}}, "f (λx.x)"},
		{&Func{Param: "f", Body: &Func{Param: "x", Body: &Call{Func: f, Arg: x}}}, "λf.λx.f x"},
		{&Native{Name: "+"}, "<native +>"},
		{&Native{}, "<native>"},
		{nil, "<nil>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, ExprString(c.expr))
	}
}

func TestWalkExpr(t *testing.T) {
	expr := &Call{
		Func: &Func{Param: "x", Body: &Var{Name: "x"}},
		Arg:  &Literal{Value: 1},
	}
	var names []string
	WalkExpr(expr, func(e Expr) { names = append(names, e.ExprName()) })
	assert.Equal(t, []string{"Call", "Func", "Var", "Literal"}, names)
}

func TestCopyExpr(t *testing.T) {
	body := &Call{Func: &Var{Name: "f"}, Arg: &Literal{Value: 1}}
	expr := &Func{Param: "f", Body: body}

	copied := CopyExpr(expr).(*Func)
	assert.Equal(t, ExprString(expr), ExprString(copied))
	assert.NotSame(t, expr, copied)
	assert.NotSame(t, body, copied.Body)

	copied.Body.(*Call).Arg.(*Literal).Value = 2
	assert.Equal(t, int64(1), body.Arg.(*Literal).Value)
	assert.Nil(t, CopyExpr(nil))
}

func TestFreeNames(t *testing.T) {
	// λx.f x (λf.f y) x
	expr := &Func{Param: "x", Body: &Call{
		Func: &Call{Func: &Call{Func: &Var{Name: "f"}, Arg: &Var{Name: "x"}},
			Arg: &Func{Param: "f", Body: &Call{Func: &Var{Name: "f"}, Arg: &Var{Name: "y"}}}},
		Arg: &Var{Name: "x"},
	}}
	assert.Equal(t, []string{"f", "y"}, FreeNames(expr))
	assert.Nil(t, FreeNames(&Literal{Value: 1}))
	assert.Equal(t, []string{"x"}, FreeNames(&Call{Func: &Func{Param: "x", Body: &Var{Name: "x"}}, Arg: &Var{Name: "x"}}))
}

func TestTypedNilExprs(t *testing.T) {
	var v *Var
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(v))
	assert.True(t, IsNil((*Call)(nil)))
	assert.False(t, IsNil(&Literal{}))

	expr := &Call{Func: &Var{Name: "f"}, Arg: v}
	assert.Equal(t, "f <nil>", ExprString(expr))
	assert.Equal(t, []string{"f"}, FreeNames(expr))
	count := 0
	WalkExpr(expr, func(Expr) { count++ })
	assert.Equal(t, 2, count)
	assert.True(t, IsNil(CopyExpr(v)))
}
