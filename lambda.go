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

// lambda provides Hindley-Milner type inference for an untyped lambda calculus with integer literals and
// native arithmetic.
//
// Inference runs in three phases. Constraints are generated from an expression within a type-environment,
// the constraints are solved by unification (with an occurs check), and the solved substitution is applied
// to the inferred type, which is then generalized over the empty type-environment and canonically renamed.
//
//
// Supported Features:
//
//   * Integer literals, variables, single-parameter functions, and application
//   * Polymorphic bindings in the initial type-environment (instantiated at each reference)
//   * Native arithmetic operators with curried types (see DefaultPrelude)
//   * Type-environments loaded from TOML (see LoadPrelude)
//
//
// Links:
//
// Write You a Haskell, Hindley-Milner Inference: http://dev.stephendiehl.com/fun/006_hindley_milner.html
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package lambda
