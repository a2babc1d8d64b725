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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

func TestConstructTypes(t *testing.T) {
	assert.Equal(t, "int -> a", types.TypeString(TArrow(TConst("int"), TVar("a"))))
	assert.Equal(t, "int -> int -> int", types.TypeString(TArrows(TConst("int"), TConst("int"), TConst("int"))))
	assert.Equal(t, "(a -> b) -> a -> b", types.TypeString(TArrows(TArrow(TVar("a"), TVar("b")), TVar("a"), TVar("b"))))
	assert.Panics(t, func() { TArrows(TConst("int")) })
}

func TestConstructExprs(t *testing.T) {
	assert.Equal(t, "λx.λy.x", ast.ExprString(Funcs([]string{"x", "y"}, Var("x"))))
	assert.Equal(t, "+ 1 2", ast.ExprString(Calls(Var("+"), Lit(1), Lit(2))))
	assert.Equal(t, "f (g 1)", ast.ExprString(Call(Var("f"), Call(Var("g"), Lit(1)))))
	assert.Equal(t, "x", ast.ExprString(Calls(Var("x"))))
	assert.Equal(t, "x", ast.ExprString(Funcs(nil, Var("x"))))
	assert.Equal(t, "<native +>", ast.ExprString(Native("+", nil)))
}
