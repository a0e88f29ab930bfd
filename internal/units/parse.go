// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

import (
	"fmt"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokMul
	tokDiv
	tokPow
	tokMinus
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '°'
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// lex splits an expression into tokens. A number written directly after a
// unit name ("m2", "cm3") is read as an exponent.
func lex(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		r, size := utf8.DecodeRuneInString(expr[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '*':
			if i+1 < len(expr) && expr[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokMul, text: "*", pos: i})
				i++
			}
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^", pos: i})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokDiv, text: "/", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case isDigit(r) || r == '.':
			end := scanNumber(expr, i)
			if end == i {
				return nil, &ParseError{Expr: expr, Pos: i, Message: "malformed number"}
			}
			if n := len(toks); n > 0 && toks[n-1].kind == tokIdent && toks[n-1].pos+len(toks[n-1].text) == i {
				toks = append(toks, token{kind: tokPow, text: "**", pos: i})
			}
			toks = append(toks, token{kind: tokNumber, text: expr[i:end], pos: i})
			i = end
		case isIdentRune(r):
			start := i
			for i < len(expr) {
				r, size := utf8.DecodeRuneInString(expr[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
			}
			toks = append(toks, token{kind: tokIdent, text: expr[start:i], pos: start})
		default:
			return nil, &ParseError{Expr: expr, Pos: i, Message: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(expr)})
	return toks, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumber returns the end of a decimal literal with optional exponent.
func scanNumber(s string, i int) int {
	start := i
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return i
}

// =============================================================================
// PARSER
// =============================================================================

// parser is a recursive-descent parser over:
//
//	expr   = term { ("*" | "/" | implicit) term }
//	term   = factor [ ("**" | "^") ["-"] integer ]
//	factor = identifier | number | "(" expr ")"
type parser struct {
	reg  *Registry
	expr string
	toks []token
	pos  int
}

func newParser(reg *Registry, expr string) (*parser, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	return &parser{reg: reg, expr: expr, toks: toks}, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Expr: p.expr, Pos: t.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() (Unit, error) {
	u, err := p.parseExpr()
	if err != nil {
		return Unit{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return Unit{}, p.errorf(t, "unexpected '%s'", t.text)
	}
	return u, nil
}

func (p *parser) parseExpr() (Unit, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Unit{}, err
	}
	for {
		op := p.peek()
		switch op.kind {
		case tokMul, tokDiv:
			p.next()
		case tokIdent, tokNumber, tokLParen:
		default:
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return Unit{}, err
		}
		var ok bool
		if op.kind == tokDiv {
			left, ok = left.div(right)
		} else {
			left, ok = left.mul(right)
		}
		if !ok {
			return Unit{}, p.exponentRange(op)
		}
	}
}

func (p *parser) parseTerm() (Unit, error) {
	base, err := p.parseFactor()
	if err != nil {
		return Unit{}, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()

	sign := 1
	if p.peek().kind == tokMinus {
		p.next()
		sign = -1
	}
	t := p.next()
	if t.kind != tokNumber {
		return Unit{}, p.errorf(t, "expected an integer exponent")
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil || v != math.Trunc(v) || v > MaxExponent {
		return Unit{}, p.errorf(t, "exponent must be an integer between -%d and %d", MaxExponent, MaxExponent)
	}
	u, ok := base.pow(sign * int(v))
	if !ok {
		return Unit{}, p.exponentRange(t)
	}
	return u, nil
}

func (p *parser) exponentRange(t token) error {
	return p.errorf(t, "dimension exponent must stay between -%d and %d", MaxExponent, MaxExponent)
}

func (p *parser) parseFactor() (Unit, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		u, ok := p.reg.resolve(t.text)
		if !ok {
			return Unit{}, &UndefinedUnitError{Name: t.text}
		}
		if u.IsOffset() {
			return Unit{}, &OffsetUnitError{Unit: t.text, Expr: p.expr}
		}
		return u, nil
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) {
			return Unit{}, p.errorf(t, "numeric factor must be positive")
		}
		return Unit{Factor: v}, nil
	case tokLParen:
		u, err := p.parseExpr()
		if err != nil {
			return Unit{}, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return Unit{}, p.errorf(closing, "expected ')'")
		}
		return u, nil
	case tokEOF:
		return Unit{}, p.errorf(t, "unexpected end of expression")
	default:
		return Unit{}, p.errorf(t, "unexpected '%s'", t.text)
	}
}
