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
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// InferenceContext is a re-usable context for type inference.
//
// An inference context cannot be used concurrently. Separate contexts do not share any state.
type InferenceContext struct {
	gen        generator
	log        *slog.Logger
	err        error
	invalid    ast.Expr
	needsReset bool
}

// Create a new type-inference context. A context may be re-used across calls of Infer.
func NewContext() *InferenceContext { return &InferenceContext{log: discardLogger} }

// SetLogger sets the logger which receives debug records for each inference run. A nil logger discards records.
func (ti *InferenceContext) SetLogger(log *slog.Logger) {
	if log == nil {
		log = discardLogger
	}
	ti.log = log
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Reset the state of the context. The context will be reset automatically between calls of Infer.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

func (ti *InferenceContext) reset() {
	ti.gen.vars.Reset()
	ti.gen.invalid, ti.err, ti.invalid, ti.needsReset = nil, nil, nil, false
}

// Infer the closed, canonically renamed type-scheme of expr within env. env is not modified.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	if ti.needsReset {
		ti.reset()
	}
	if ti.log == nil {
		ti.log = discardLogger
	}
	ti.needsReset = true
	if ast.IsNil(expr) {
		ti.err = errors.New("Empty expression")
		return nil, ti.err
	}
	if env == nil {
		env = NewTypeEnv()
	}
	ti.gen.vars.Reserved = env.FreeVars()
	debug := ti.log.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		nodes := 0
		ast.WalkExpr(expr, func(ast.Expr) { nodes++ })
		ti.log.Debug("inferring expression", "expr", ast.ExprString(expr), "nodes", nodes, "env", env.Len())
	}

	t, cs, err := ti.gen.infer(env, expr)
	if err != nil {
		return nil, ti.fail(ti.gen.invalid, err)
	}
	if debug {
		ti.log.Debug("generated constraints", "type", types.TypeString(t), "count", len(cs))
	}

	s, invalid, err := solve(cs, ti.log)
	if err != nil {
		return nil, ti.fail(invalid, err)
	}
	sc := closeOver(s, t)
	if debug {
		ti.log.Debug("inferred type", "scheme", sc.String())
	}
	return sc, nil
}

// Check infers the type of expr within env and returns it for display. If inference fails, the error
// message is returned instead and ok is false.
func (ti *InferenceContext) Check(expr ast.Expr, env *TypeEnv) (display string, ok bool) {
	sc, err := ti.Infer(expr, env)
	if err != nil {
		return err.Error(), false
	}
	return types.TypeString(sc.Type), true
}

func (ti *InferenceContext) fail(invalid ast.Expr, err error) error {
	ti.invalid, ti.err = invalid, err
	ti.log.Debug("inference failed", "kind", ErrorKind(err), "error", err.Error())
	return err
}

// Infer the closed, canonically renamed type-scheme of expr within env, using a new context.
func Infer(expr ast.Expr, env *TypeEnv) (*types.Scheme, error) {
	return NewContext().Infer(expr, env)
}
