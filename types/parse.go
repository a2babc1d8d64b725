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
	"errors"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"
)

// ParseScheme parses a type signature such as `(a -> b) -> a -> b`. Identifiers listed in forall are
// parsed as quantified type-variables; all other identifiers are parsed as type constants.
//
// Arrows associate to the right; parentheses group.
func ParseScheme(forall []string, src string) (*Scheme, error) {
	p := typeParser{src: src, forall: forall}
	p.next()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.tok != tokEOF {
		return nil, p.errorf("unexpected %s", p.describe())
	}
	for _, name := range forall {
		if !FreeVars(t).Contains(name) {
			return nil, fmt.Errorf("quantified type-variable %s does not appear in %q", name, src)
		}
	}
	return NewScheme(forall, t), nil
}

type token int

const (
	tokEOF token = iota
	tokIdent
	tokArrow
	tokLParen
	tokRParen
	tokInvalid
)

type typeParser struct {
	src    string
	forall []string
	pos    int // offset of the current token
	off    int // offset after the current token
	tok    token
	lit    string
}

func (p *typeParser) next() {
	for p.off < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.off:])
		if !unicode.IsSpace(r) {
			break
		}
		p.off += size
	}
	p.pos = p.off
	if p.off >= len(p.src) {
		p.tok, p.lit = tokEOF, ""
		return
	}
	r, size := utf8.DecodeRuneInString(p.src[p.off:])
	switch {
	case r == '(':
		p.tok, p.off = tokLParen, p.off+size
	case r == ')':
		p.tok, p.off = tokRParen, p.off+size
	case r == '-' && p.off+1 < len(p.src) && p.src[p.off+1] == '>':
		p.tok, p.off = tokArrow, p.off+2
	case isIdentRune(r):
		end := p.off
		for end < len(p.src) {
			r, size := utf8.DecodeRuneInString(p.src[end:])
			if !isIdentRune(r) {
				break
			}
			end += size
		}
		p.tok, p.off = tokIdent, end
	default:
		p.tok, p.off = tokInvalid, p.off+size
	}
	p.lit = p.src[p.pos:p.off]
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

func (p *typeParser) parseType() (Type, error) {
	arg, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok != tokArrow {
		return arg, nil
	}
	p.next()
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &Arrow{Arg: arg, Return: ret}, nil
}

func (p *typeParser) parseAtom() (Type, error) {
	switch p.tok {
	case tokIdent:
		name := p.lit
		p.next()
		if slices.Contains(p.forall, name) {
			return &Var{Name: name}, nil
		}
		return &Const{Name: name}, nil

	case tokLParen:
		p.next()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.tok != tokRParen {
			return nil, p.errorf("expected ) but found %s", p.describe())
		}
		p.next()
		return t, nil

	case tokEOF:
		if p.src == "" {
			return nil, errors.New("empty type signature")
		}
	}
	return nil, p.errorf("expected a type but found %s", p.describe())
}

func (p *typeParser) describe() string {
	if p.tok == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.lit)
}

func (p *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("type signature %q, offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}
