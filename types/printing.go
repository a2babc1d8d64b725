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
	"strconv"
	"strings"
)

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(i)
	}
}

func varName(i int) string {
	if i >= 26 {
		return string(byte('a'+i%26)) + strconv.Itoa(i/26)
	}
	return string(byte('a' + i%26))
}

// VarName returns the i-th name in the type-variable sequence: `a, b, ..., z, a1, b1, ..., z1, a2, ...`
func VarName(i int) string {
	if i >= 0 && i < len(_names) {
		return _names[i]
	}
	return varName(i)
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

func typeString(sb *strings.Builder, simple bool, t Type) {
	switch t := t.(type) {
	case *Const:
		sb.WriteString(t.Name)

	case *Var:
		sb.WriteString(t.Name)

	case *Arrow:
		if simple {
			sb.WriteByte('(')
		}
		typeString(sb, true, t.Arg)
		sb.WriteString(" -> ")
		typeString(sb, false, t.Return)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}
