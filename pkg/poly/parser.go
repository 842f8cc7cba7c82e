// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"errors"
	"strconv"
	"strings"

	"github.com/consensys/go-groebner/pkg/util/source"
	"github.com/consensys/go-groebner/pkg/util/source/lex"
)

// ErrParse signals malformed polynomial text.  Errors returned from the parser
// are *ParseError values, which match ErrParse under errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports one or more syntax errors, each of which retains the
// position within the source text where it arose.
type ParseError struct {
	Errors []source.SyntaxError
}

func (e *ParseError) Error() string {
	var msgs = make([]string, len(e.Errors))
	//
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Error()
	}
	//
	return "parse error: " + strings.Join(msgs, "; ")
}

// Is allows errors.Is(err, ErrParse) to hold for parse errors.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// COMMA separates list items
const COMMA uint = 4

// NUMBER signals a natural number
const NUMBER uint = 5

// IDENTIFIER signals a variable (or sequence of juxtaposed variables)
const IDENTIFIER uint = 6

// ADD represents addition
const ADD uint = 7

// SUB represents subtraction (or negation)
const SUB uint = 8

// MUL represents multiplication
const MUL uint = 9

// DIV represents division by a constant
const DIV uint = 10

// POW represents exponentiation
const POW uint = 11

var whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

var number = lex.Many(lex.Within('0', '9'))

var letter = lex.Or(lex.Unit('_'), lex.Within('a', 'z'), lex.Within('A', 'Z'))

var identifier = lex.Prefixed(letter, lex.Many(lex.Or(letter, lex.Within('0', '9'))))

// lexing rules, where "**" must precede "*".
var rules = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.String("**"), POW),
	lex.Rule(lex.Unit('^'), POW),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// ParsePolynomial parses a single polynomial over this ring, such as
// "x^2*y - 3 x + 1".
func (r *Ring[C]) ParsePolynomial(text string) (Polynomial[C], error) {
	parser, errs := newParser(r, source.NewSourceString(text))
	if len(errs) != 0 {
		return r.Zero(), &ParseError{errs}
	}
	//
	p, errs := parser.parseExpr()
	if len(errs) == 0 && !parser.follows(END_OF) {
		errs = parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	if len(errs) != 0 {
		return r.Zero(), &ParseError{errs}
	}
	//
	return p, nil
}

// ParsePolynomialList parses a list of polynomials over this ring, either as a
// parenthesised list "((x*y - 1), (x^2 + y))" or as a bare comma separated
// list "x*y - 1, x^2 + y".
func (r *Ring[C]) ParsePolynomialList(text string) ([]Polynomial[C], error) {
	return r.ParsePolynomialFile(source.NewSourceString(text))
}

// ParsePolynomialFile parses a list of polynomials from a given source file.
func (r *Ring[C]) ParsePolynomialFile(srcfile *source.File) ([]Polynomial[C], error) {
	parser, errs := newParser(r, srcfile)
	if len(errs) != 0 {
		return nil, &ParseError{errs}
	}
	// A leading brace may either enclose the whole list, or just the first
	// polynomial.  Try the former first.
	if parser.follows(LBRACE) {
		if polys, errs := parser.parseBracketedList(); len(errs) == 0 {
			return polys, nil
		}
		//
		parser.index = 0
	}
	//
	polys, errs := parser.parseList()
	if len(errs) == 0 && !parser.follows(END_OF) {
		errs = parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	if len(errs) != 0 {
		return nil, &ParseError{errs}
	}
	//
	return polys, nil
}

// parser for polynomials in infix notation over a given ring.
type parser[C any] struct {
	ring    *Ring[C]
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func newParser[C any](ring *Ring[C], srcfile *source.File) (*parser[C], []source.SyntaxError) {
	var (
		lexer  = lex.NewLexer(srcfile.Contents(), rules...)
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	var filtered []lex.Token
	//
	for _, t := range tokens {
		if t.Kind != WHITESPACE {
			filtered = append(filtered, t)
		}
	}
	//
	return &parser[C]{ring, srcfile, filtered, 0}, nil
}

func (p *parser[C]) parseBracketedList() ([]Polynomial[C], []source.SyntaxError) {
	p.expect(LBRACE)
	//
	if p.match(RBRACE) {
		return nil, p.expectEnd()
	}
	//
	polys, errs := p.parseList()
	//
	if len(errs) != 0 {
		return nil, errs
	} else if !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected \")\"")
	}
	//
	return polys, p.expectEnd()
}

func (p *parser[C]) parseList() ([]Polynomial[C], []source.SyntaxError) {
	var polys []Polynomial[C]
	//
	if p.follows(END_OF) {
		return nil, nil
	}
	//
	for {
		poly, errs := p.parseExpr()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		polys = append(polys, poly)
		//
		if !p.match(COMMA) {
			return polys, nil
		}
	}
}

// expr ::= ['+'|'-'] product (('+'|'-') product)*
func (p *parser[C]) parseExpr() (Polynomial[C], []source.SyntaxError) {
	var negate = false
	//
	if p.match(SUB) {
		negate = true
	} else {
		p.match(ADD)
	}
	//
	acc, errs := p.parseProduct()
	if len(errs) != 0 {
		return acc, errs
	} else if negate {
		acc = acc.Neg()
	}
	//
	for p.follows(ADD, SUB) {
		op := p.expect(p.lookahead().Kind)
		//
		rhs, errs := p.parseProduct()
		if len(errs) != 0 {
			return acc, errs
		} else if op.Kind == ADD {
			acc = acc.Add(rhs)
		} else {
			acc = acc.Sub(rhs)
		}
	}
	//
	return acc, nil
}

// product ::= power (('*' | '/' | <juxtaposition>) power)*
func (p *parser[C]) parseProduct() (Polynomial[C], []source.SyntaxError) {
	acc, errs := p.parsePower()
	//
	for len(errs) == 0 {
		var (
			rhs   Polynomial[C]
			token = p.lookahead()
		)
		//
		switch {
		case p.match(MUL), p.follows(NUMBER, IDENTIFIER, LBRACE):
			if rhs, errs = p.parsePower(); len(errs) == 0 {
				acc, errs = p.multiply(token, func() Polynomial[C] { return acc.Mul(rhs) })
			}
		case p.match(DIV):
			rhs, errs = p.parsePower()
			if len(errs) == 0 {
				acc, errs = p.divide(acc, rhs, token)
			}
		default:
			return acc, nil
		}
	}
	//
	return acc, errs
}

// power ::= atom (('**' | '^') NUMBER)?
func (p *parser[C]) parsePower() (Polynomial[C], []source.SyntaxError) {
	base, errs := p.parseAtom()
	//
	if len(errs) != 0 || !p.match(POW) {
		return base, errs
	} else if !p.follows(NUMBER) {
		return base, p.syntaxErrors(p.lookahead(), "expected exponent")
	}
	//
	token := p.expect(NUMBER)
	//
	n, err := strconv.ParseUint(p.text(token), 10, 32)
	if err != nil {
		return base, p.syntaxErrors(token, "invalid exponent")
	}
	//
	return p.multiply(token, func() Polynomial[C] { return base.Pow(uint32(n)) })
}

// multiply evaluates a product, reporting exponent overflow as a syntax error
// at the given token.
func (p *parser[C]) multiply(token lex.Token, product func() Polynomial[C]) (res Polynomial[C],
	errs []source.SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrExponentOverflow) {
				panic(r)
			}
			//
			res, errs = p.ring.Zero(), p.syntaxErrors(token, "exponent too large")
		}
	}()
	//
	return product(), nil
}

// atom ::= NUMBER | IDENTIFIER | '(' expr ')'
func (p *parser[C]) parseAtom() (Polynomial[C], []source.SyntaxError) {
	var token = p.lookahead()
	//
	switch {
	case p.match(NUMBER):
		c, err := p.ring.domain.Parse(p.text(token))
		if err != nil {
			return p.ring.Zero(), p.syntaxErrors(token, err.Error())
		}
		//
		return p.ring.Const(c), nil
	case p.match(IDENTIFIER):
		return p.parseVariables(token)
	case p.match(LBRACE):
		poly, errs := p.parseExpr()
		if len(errs) == 0 && !p.match(RBRACE) {
			errs = p.syntaxErrors(p.lookahead(), "expected \")\"")
		}
		//
		return poly, errs
	case p.follows(END_OF):
		return p.ring.Zero(), p.syntaxErrors(token, "unexpected end of input")
	default:
		return p.ring.Zero(), p.syntaxErrors(token, "unexpected token")
	}
}

// parseVariables resolves an identifier.  This is either a variable of the
// ring, or a juxtaposition of variables without intervening space (such as
// "xy").  In the latter case, the longest matching variable name is taken
// at each step.
func (p *parser[C]) parseVariables(token lex.Token) (Polynomial[C], []source.SyntaxError) {
	var (
		name = p.text(token)
		acc  = p.ring.One()
	)
	//
	for len(name) > 0 {
		var best = -1
		//
		for i, v := range p.ring.names {
			if strings.HasPrefix(name, v) && (best < 0 || len(v) > len(p.ring.names[best])) {
				best = i
			}
		}
		//
		if best < 0 {
			return acc, p.syntaxErrors(token, "unknown variable \""+p.text(token)+"\"")
		}
		//
		acc = acc.Mul(p.ring.Var(uint(best)))
		name = name[len(p.ring.names[best]):]
	}
	//
	return acc, nil
}

func (p *parser[C]) divide(lhs Polynomial[C], rhs Polynomial[C], token lex.Token) (Polynomial[C],
	[]source.SyntaxError) {
	//
	if rhs.IsZero() {
		return lhs, p.syntaxErrors(token, "division by zero")
	} else if !rhs.IsConstant() {
		return lhs, p.syntaxErrors(token, "division by non-constant")
	}
	//
	res, err := lhs.divide(rhs.LeadingCoefficient())
	if err != nil {
		return lhs, p.syntaxErrors(token, err.Error())
	}
	//
	return res, nil
}

func (p *parser[C]) text(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

func (p *parser[C]) lookahead() lex.Token {
	// NOTE: there is always a lookahead expected at any point because the
	// last token is always END_OF
	return p.tokens[p.index]
}

// Check whether the lookahead is one of the given kinds.
func (p *parser[C]) follows(options ...uint) bool {
	var kind = p.lookahead().Kind
	//
	for _, option := range options {
		if kind == option {
			return true
		}
	}
	//
	return false
}

// Match the lookahead, advancing if it has the given kind.
func (p *parser[C]) match(kind uint) bool {
	if p.tokens[p.index].Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Expect the lookahead to be of the given kind, and consume it.
func (p *parser[C]) expect(kind uint) lex.Token {
	token := p.tokens[p.index]
	if token.Kind != kind {
		panic("unexpected token")
	}
	//
	p.index++
	//
	return token
}

func (p *parser[C]) expectEnd() []source.SyntaxError {
	if !p.follows(END_OF) {
		return p.syntaxErrors(p.lookahead(), "unexpected token")
	}
	//
	return nil
}

func (p *parser[C]) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
