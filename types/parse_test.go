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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	cases := []struct {
		forall []string
		src    string
		expect string
	}{
		{nil, "int", "int"},
		{nil, "int -> int -> int", "int -> int -> int"},
		{nil, " ( int ) ", "int"},
		{[]string{"a"}, "a", "forall a. a"},
		{[]string{"a", "b"}, "(a -> b) -> a -> b", "forall a b. (a -> b) -> a -> b"},
		{[]string{"a"}, "((a -> int)) -> a", "forall a. (a -> int) -> a"},
		{[]string{"a'"}, "a' -> bool", "forall a'. a' -> bool"},
	}
	for _, c := range cases {
		sc, err := ParseScheme(c.forall, c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.expect, sc.String(), c.src)
	}

	sc, err := ParseScheme([]string{"a"}, "a -> b")
	require.NoError(t, err)
	arrow := sc.Type.(*Arrow)
	assert.IsType(t, &Var{}, arrow.Arg)
	assert.IsType(t, &Const{}, arrow.Return)
}

func TestParseSchemeErrors(t *testing.T) {
	cases := []struct {
		forall  []string
		src     string
		message string
	}{
		{nil, "", "empty type signature"},
		{nil, "   ", `type signature "   ", offset 3: expected a type but found end of input`},
		{nil, "int int", `type signature "int int", offset 4: unexpected "int"`},
		{nil, "(int -> int", `type signature "(int -> int", offset 11: expected ) but found end of input`},
		{nil, "-> int", `type signature "-> int", offset 0: expected a type but found "->"`},
		{nil, "int - int", `type signature "int - int", offset 4: unexpected "-"`},
		{[]string{"a"}, "int", `quantified type-variable a does not appear in "int"`},
	}
	for _, c := range cases {
		_, err := ParseScheme(c.forall, c.src)
		assert.EqualError(t, err, c.message, c.src)
	}
}
