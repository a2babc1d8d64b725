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

package lambda_test

import (
	"fmt"
	"strings"
	"testing"

	"gotest.tools/v3/golden"

	. "github.com/wdamron/lambda"
	. "github.com/wdamron/lambda/construct"

	"github.com/wdamron/lambda/ast"
)

func TestScenariosGolden(t *testing.T) {
	f, x := Var("f"), Var("x")
	exprs := []ast.Expr{
		Func("f", Call(f, Call(f, Lit(1)))),
		Func("f", Call(f, Lit(1))),
		Funcs([]string{"t", "f"}, Var("t")),
		Call(Funcs([]string{"f", "x"}, Call(f, x)), Var("+")),
		Func("x", Call(x, x)),
		Call(Func("f", Call(f, Lit(1))), Lit(1)),
		Call(Var("True"), Call(Var("True"), Var("False"))),
		Var("⊥"),
		Call(Var("+"), Lit(1)),
		Funcs([]string{"f", "x"}, Call(f, Call(f, x))),
		Call(Func("f", Call(f, Call(f, Lit(1)))), Call(Var("+"), Lit(1))),
	}

	var sb strings.Builder
	ctx := NewContext()
	for _, expr := range exprs {
		display, ok := ctx.Check(expr, DefaultPrelude())
		if !ok {
			display = "error: " + display
		}
		fmt.Fprintf(&sb, "%s : %s\n", ast.ExprString(expr), display)
	}
	golden.Assert(t, sb.String(), "scenarios.golden")
}
