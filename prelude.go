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
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

//go:embed prelude.toml
var preludeTOML []byte

// Binding is a named type signature within a prelude file.
type Binding struct {
	Name   string   `toml:"name"`
	Type   string   `toml:"type"`
	Forall []string `toml:"forall"`
}

type preludeFile struct {
	Bindings []Binding `toml:"binding"`
}

var (
	defaultPreludeOnce sync.Once
	defaultPrelude     *TypeEnv
)

// DefaultPrelude returns the type-environment of the native operators: `+ - * /` with type `int -> int -> int`,
// and `⊥` with type `forall a. a`.
func DefaultPrelude() *TypeEnv {
	defaultPreludeOnce.Do(func() {
		env, err := LoadPrelude(bytes.NewReader(preludeTOML))
		if err != nil {
			panic("invalid embedded prelude: " + err.Error())
		}
		defaultPrelude = env
	})
	return defaultPrelude
}

// LoadPrelude decodes a type-environment from TOML:
//
//	[[binding]]
//	name = "const"
//	forall = ["a", "b"]
//	type = "a -> b -> a"
//
// Unknown keys, duplicate names, and malformed type signatures are rejected.
func LoadPrelude(r io.Reader) (*TypeEnv, error) {
	var file preludeFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decoding prelude: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("decoding prelude: unknown keys: %s", strings.Join(keys, ", "))
	}

	env := NewTypeEnv()
	for i, b := range file.Bindings {
		if b.Name == "" {
			return nil, fmt.Errorf("prelude binding %d: missing name", i)
		}
		if _, exists := env.Lookup(b.Name); exists {
			return nil, fmt.Errorf("prelude binding %d: duplicate name %s", i, b.Name)
		}
		sc, err := types.ParseScheme(b.Forall, b.Type)
		if err != nil {
			return nil, fmt.Errorf("prelude binding %s: %w", b.Name, err)
		}
		env = env.Extend(b.Name, sc)
	}
	return env, nil
}

// Define infers the type of expr within env and returns a type-environment which binds name to the
// generalized type. env is not modified.
func Define(env *TypeEnv, name string, expr ast.Expr) (*TypeEnv, error) {
	if name == "" {
		return nil, errors.New("Empty name")
	}
	sc, err := Infer(expr, env)
	if err != nil {
		return nil, fmt.Errorf("defining %s: %w", name, err)
	}
	return env.Extend(name, sc), nil
}
