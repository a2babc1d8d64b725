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
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression in lambda-notation: `(λf.λx.f x) +`
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

// When simple is true, applications and abstractions are parenthesized.
func exprString(sb *strings.Builder, simple bool, expr Expr) {
	if IsNil(expr) {
		sb.WriteString("<nil>")
		return
	}
	switch et := expr.(type) {
	case *Literal:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		if simple {
			sb.WriteByte('(')
		}
		// applications associate to the left
		if _, isFunc := et.Func.(*Func); isFunc {
			exprString(sb, true, et.Func)
		} else {
			exprString(sb, false, et.Func)
		}
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("λ")
		sb.WriteString(et.Param)
		sb.WriteByte('.')
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Native:
		sb.WriteString("<native")
		if et.Name != "" {
			sb.WriteByte(' ')
			sb.WriteString(et.Name)
		}
		sb.WriteByte('>')

	}
}
