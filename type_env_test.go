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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/lambda/construct"
	"github.com/wdamron/lambda/types"
)

func TestTypeEnvExtend(t *testing.T) {
	env := NewTypeEnv()
	extended := env.Extend("x", types.Monotype(types.Int))
	assert.Equal(t, 0, env.Len())
	assert.Equal(t, 1, extended.Len())

	_, ok := env.Lookup("x")
	assert.False(t, ok)
	sc, ok := extended.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "int", sc.String())

	// shadowing replaces the binding in the new environment only
	shadowed := extended.Extend("x", types.Monotype(TVar("a")))
	sc, _ = shadowed.Lookup("x")
	assert.Equal(t, "a", sc.String())
	sc, _ = extended.Lookup("x")
	assert.Equal(t, "int", sc.String())

	removed := shadowed.Remove("x")
	assert.Equal(t, 0, removed.Len())
	assert.Equal(t, 1, shadowed.Len())
}

func TestTypeEnvDeclare(t *testing.T) {
	env := NewTypeEnv().Declare("const", TArrows(TVar("b"), TVar("a"), TVar("b")))
	sc, ok := env.Lookup("const")
	require.True(t, ok)
	assert.Equal(t, "forall a b. b -> a -> b", sc.String())
	assert.Equal(t, 0, env.FreeVars().Len())
}

func TestTypeEnvRange(t *testing.T) {
	var names []string
	DefaultPrelude().Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"*", "+", "-", "/", "⊥"}, names)

	names = names[:0]
	DefaultPrelude().Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return len(names) < 2
	})
	assert.Len(t, names, 2)
}

func TestTypeEnvApply(t *testing.T) {
	env := NewTypeEnv().
		Extend("x", types.Monotype(TVar("a"))).
		Extend("id", types.NewScheme([]string{"a"}, TArrow(TVar("a"), TVar("a")))).
		Extend("y", types.Monotype(TArrow(TVar("b"), TVar("a"))))
	assert.Equal(t, []string{"a", "b"}, env.FreeVars().Sorted())

	applied := env.Apply(types.SingletonSubst("a", types.Int))
	x, _ := applied.Lookup("x")
	id, _ := applied.Lookup("id")
	y, _ := applied.Lookup("y")
	assert.Equal(t, "int", x.String())
	assert.Equal(t, "forall a. a -> a", id.String())
	assert.Equal(t, "b -> int", y.String())
	assert.Equal(t, []string{"b"}, applied.FreeVars().Sorted())

	// the original environment is unchanged
	x, _ = env.Lookup("x")
	assert.Equal(t, "a", x.String())

	assert.Same(t, env, env.Apply(types.EmptySubst()))
}

func TestTypeEnvNil(t *testing.T) {
	var env *TypeEnv
	assert.Equal(t, 0, env.Len())
	_, ok := env.Lookup("x")
	assert.False(t, ok)
	assert.Equal(t, 1, env.Extend("x", types.Monotype(types.Int)).Len())
}

func TestTypeEnvSharedAcrossGoroutines(t *testing.T) {
	env := DefaultPrelude()
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			display, _ := NewContext().Check(Func("x", Calls(Var("+"), Var("x"), Lit(int64(i)))), env)
			results[i] = display
		}(i)
	}
	wg.Wait()
	for _, display := range results {
		assert.Equal(t, "int -> int", display)
	}
	assert.Equal(t, 5, env.Len())
}
