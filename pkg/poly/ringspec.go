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
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/util/source"
)

// RingSpec is a parsed ring description, such as "QQ(x,y) L" or
// "Mod 19 (a,b,c) G".  The coefficient domain is only named here, since
// choosing its representation is left to the caller (see NewRingFromSpec).
type RingSpec struct {
	// Domain is one of "QQ", "ZZ", "Mod", "GF" or "BLS12-377".
	Domain string
	// Modulus of a "Mod" or "GF" domain (nil otherwise).
	Modulus *big.Int
	// Vars are the variable names, greatest first.
	Vars  []string
	Order Order
	// Relations of a solvable ring, if any.
	Relations []RelationSpec
}

// RelationSpec describes a relation Upper * Lower = Rhs, where the right-hand
// side is kept as text until the coefficient domain is known.
type RelationSpec struct {
	Upper string
	Lower string
	Rhs   string
}

// DefaultOrder is used when a ring description omits the term order.
const DefaultOrder = GradedRevLex

// ParseRingSpec parses a textual ring description.  Solvable rings are
// described by appending a relation table, where each triple (a), (b), (p)
// states that a * b = p.  For example, the Weyl algebra in x and d is
// "QQ(x,d) L RelationTable((d), (x), (x*d + 1))".
func ParseRingSpec(text string) (RingSpec, error) {
	var srcfile = source.NewSourceString(text)
	//
	parser, errs := newParser[*big.Rat](nil, srcfile)
	if len(errs) != 0 {
		return RingSpec{}, &ParseError{errs}
	}
	//
	spec, errs := parseRingSpec(parser)
	if len(errs) != 0 {
		return RingSpec{}, &ParseError{errs}
	}
	//
	return spec, nil
}

func parseRingSpec[C any](p *parser[C]) (RingSpec, []source.SyntaxError) {
	var (
		spec RingSpec
		errs []source.SyntaxError
	)
	//
	if spec.Domain, spec.Modulus, errs = parseDomainName(p); len(errs) != 0 {
		return spec, errs
	} else if spec.Vars, errs = parseVariableNames(p); len(errs) != 0 {
		return spec, errs
	}
	//
	spec.Order = DefaultOrder
	// Optional term order
	if p.follows(IDENTIFIER) && p.text(p.lookahead()) != "RelationTable" {
		token := p.expect(IDENTIFIER)
		order, err := ParseOrder(p.text(token))
		//
		if err != nil {
			return spec, p.syntaxErrors(token, err.Error())
		}
		//
		spec.Order = order
	}
	// Optional relation table
	if p.follows(IDENTIFIER) && p.text(p.lookahead()) == "RelationTable" {
		p.expect(IDENTIFIER)
		//
		if spec.Relations, errs = parseRelationTable(p); len(errs) != 0 {
			return spec, errs
		}
	}
	//
	return spec, p.expectEnd()
}

func parseDomainName[C any](p *parser[C]) (string, *big.Int, []source.SyntaxError) {
	var token = p.lookahead()
	//
	if !p.match(IDENTIFIER) {
		return "", nil, p.syntaxErrors(token, "expected coefficient domain")
	}
	//
	switch name := p.text(token); name {
	case "QQ", "ZZ":
		return name, nil, nil
	case "BLS12":
		if p.match(SUB) && p.follows(NUMBER) && p.text(p.lookahead()) == "377" {
			p.expect(NUMBER)
			return "BLS12-377", nil, nil
		}
	case "Mod", "GF":
		if p.follows(NUMBER) {
			var (
				num        = p.expect(NUMBER)
				modulus, _ = new(big.Int).SetString(p.text(num), 10)
			)
			//
			return name, modulus, nil
		}
		//
		return "", nil, p.syntaxErrors(p.lookahead(), "expected modulus")
	}
	//
	return "", nil, p.syntaxErrors(token, "unknown coefficient domain")
}

func parseVariableNames[C any](p *parser[C]) ([]string, []source.SyntaxError) {
	var names []string
	//
	if !p.match(LBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected \"(\"")
	}
	//
	for {
		token := p.lookahead()
		//
		if !p.match(IDENTIFIER) {
			return nil, p.syntaxErrors(token, "expected variable name")
		} else if slices.Contains(names, p.text(token)) {
			return nil, p.syntaxErrors(token, "duplicate variable name")
		}
		//
		names = append(names, p.text(token))
		//
		if p.match(RBRACE) {
			return names, nil
		} else if !p.match(COMMA) {
			return nil, p.syntaxErrors(p.lookahead(), "expected \",\" or \")\"")
		}
	}
}

func parseRelationTable[C any](p *parser[C]) ([]RelationSpec, []source.SyntaxError) {
	var (
		relations []RelationSpec
		parts     [3]string
	)
	//
	if !p.match(LBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected \"(\"")
	}
	//
	for !p.match(RBRACE) {
		for i := range parts {
			if i != 0 || len(relations) != 0 {
				if !p.match(COMMA) {
					return nil, p.syntaxErrors(p.lookahead(), "expected \",\"")
				}
			}
			//
			text, errs := parseBracketedText(p)
			if len(errs) != 0 {
				return nil, errs
			}
			//
			parts[i] = strings.TrimSpace(text)
		}
		//
		relations = append(relations, RelationSpec{parts[0], parts[1], parts[2]})
	}
	//
	return relations, nil
}

// parseBracketedText returns the raw text between a pair of matching braces.
func parseBracketedText[C any](p *parser[C]) (string, []source.SyntaxError) {
	var (
		open  = p.lookahead()
		depth = 1
	)
	//
	if !p.match(LBRACE) {
		return "", p.syntaxErrors(open, "expected \"(\"")
	}
	//
	for depth > 0 {
		token := p.lookahead()
		//
		switch {
		case p.follows(END_OF):
			return "", p.syntaxErrors(open, "unbalanced \"(\"")
		case p.match(LBRACE):
			depth++
		case p.match(RBRACE):
			depth--
			//
			if depth == 0 {
				span := source.NewSpan(open.Span.End(), token.Span.Start())
				return p.srcfile.Text(span), nil
			}
		default:
			p.expect(token.Kind)
		}
	}
	//
	panic("unreachable")
}

// NewRingFromSpec constructs a ring from its description over a given
// coefficient domain, which the caller is responsible for choosing to match
// spec.Domain.
func NewRingFromSpec[C any](spec RingSpec, domain coeff.Domain[C]) (*Ring[C], error) {
	var (
		ring      = NewRing(spec.Vars, domain, spec.Order)
		relations []Relation[C]
	)
	//
	if len(spec.Relations) == 0 {
		return ring, nil
	}
	//
	for _, rel := range spec.Relations {
		upper, ok1 := ring.VarIndex(rel.Upper)
		lower, ok2 := ring.VarIndex(rel.Lower)
		//
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: unknown variable in relation (%s), (%s)", ErrRelation, rel.Upper, rel.Lower)
		}
		// Right-hand side is written in ordered (standard) form, hence is
		// parsed commutatively.
		rhs, err := ring.ParsePolynomial(rel.Rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRelation, err)
		}
		//
		relations = append(relations, Relation[C]{upper, lower, rhs.terms})
	}
	//
	return NewSolvableRing(spec.Vars, domain, spec.Order, relations...)
}
