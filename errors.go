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

package lambda

import (
	"errors"

	"github.com/wdamron/lambda/types"
)

// UnboundVariableError is returned when a referenced identifier is not bound in the visible type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Unbound variable: " + e.Name }

// UnificationError is returned when two types cannot be made equal.
type UnificationError struct {
	Left, Right types.Type
}

func (e *UnificationError) Error() string {
	return "Cannot unify '" + types.TypeString(e.Left) + "' with '" + types.TypeString(e.Right) + "'"
}

// InfiniteTypeError is returned when binding a type-variable would require an infinitely nested type.
type InfiniteTypeError struct {
	Var  string
	Type types.Type
}

func (e *InfiniteTypeError) Error() string {
	return "Infinite type: Cannot unify '" + e.Var + "' with '" + types.TypeString(e.Type) + "'"
}

// ErrorKind names the kind of an inference error: "unbound_variable", "unification_fail", or "infinite_type".
// An empty string is returned for other errors.
func ErrorKind(err error) string {
	var (
		unbound  *UnboundVariableError
		unify    *UnificationError
		infinite *InfiniteTypeError
	)
	switch {
	case errors.As(err, &unbound):
		return "unbound_variable"
	case errors.As(err, &unify):
		return "unification_fail"
	case errors.As(err, &infinite):
		return "infinite_type"
	}
	return ""
}
