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
	"strings"

	"github.com/consensys/go-groebner/pkg/coeff"
)

// Side determines on which side a polynomial is multiplied.  The two sides only
// differ in solvable rings.
type Side uint8

const (
	// Left multiplication, i.e. t * p.
	Left Side = iota
	// Right multiplication, i.e. p * t.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	//
	return "right"
}

// Polynomial is an immutable sparse polynomial, represented as a sequence of
// terms in strictly decreasing order (with respect to its ring's term order).
// The zero polynomial has no terms.  Since polynomials are never mutated, they
// can share structure and be used freely from multiple goroutines.
type Polynomial[C any] struct {
	ring  *Ring[C]
	terms []Term[C]
}

// Ring returns the ring to which this polynomial belongs.
func (p Polynomial[C]) Ring() *Ring[C] {
	return p.ring
}

// Len returns the number of terms in this polynomial.
func (p Polynomial[C]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of this polynomial, where the zeroth term is the
// leading term.
func (p Polynomial[C]) Term(i uint) Term[C] {
	return p.terms[i]
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial[C]) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant checks whether this polynomial is zero or has only a constant
// term.
func (p Polynomial[C]) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Exp.IsOne())
}

// IsOne checks whether this is the constant polynomial one.
func (p Polynomial[C]) IsOne() bool {
	return len(p.terms) == 1 && p.terms[0].Exp.IsOne() && p.ring.domain.IsOne(p.terms[0].Coeff)
}

// LeadingTerm returns the greatest term of this (nonzero) polynomial.
func (p Polynomial[C]) LeadingTerm() Term[C] {
	return p.terms[0]
}

// LeadingMonomial returns the monomial of the leading term.
func (p Polynomial[C]) LeadingMonomial() Monomial {
	return p.terms[0].Exp
}

// LeadingCoefficient returns the coefficient of the leading term.
func (p Polynomial[C]) LeadingCoefficient() C {
	return p.terms[0].Coeff
}

// Tail returns this polynomial without its leading term.
func (p Polynomial[C]) Tail() Polynomial[C] {
	if len(p.terms) == 0 {
		return p
	}
	//
	return Polynomial[C]{p.ring, p.terms[1:]}
}

// Equal checks whether two polynomials have identical terms.
func (p Polynomial[C]) Equal(q Polynomial[C]) bool {
	if len(p.terms) != len(q.terms) || !p.ring.Compatible(q.ring) {
		return false
	}
	//
	for i, t := range p.terms {
		s := q.terms[i]
		if !t.Exp.Equal(s.Exp) || !p.ring.domain.Equal(t.Coeff, s.Coeff) {
			return false
		}
	}
	//
	return true
}

// Add returns p + q.
func (p Polynomial[C]) Add(q Polynomial[C]) Polynomial[C] {
	p.ring.mustMatch(q.ring)
	//
	return Polynomial[C]{p.ring, p.ring.merge(p.terms, q.terms, false)}
}

// Sub returns p - q.
func (p Polynomial[C]) Sub(q Polynomial[C]) Polynomial[C] {
	p.ring.mustMatch(q.ring)
	//
	return Polynomial[C]{p.ring, p.ring.merge(p.terms, q.terms, true)}
}

// Neg returns -p.
func (p Polynomial[C]) Neg() Polynomial[C] {
	return p.Scale(p.ring.domain.Neg(p.ring.domain.One()))
}

// Scale returns c * p.  Coefficients commute with variables, hence there is no
// distinction between left and right scaling.
func (p Polynomial[C]) Scale(c C) Polynomial[C] {
	var (
		domain = p.ring.domain
		terms  = make([]Term[C], 0, len(p.terms))
	)
	//
	if domain.IsZero(c) {
		return p.ring.Zero()
	} else if domain.IsOne(c) {
		return p
	}
	//
	for _, t := range p.terms {
		if v := domain.Mul(c, t.Coeff); !domain.IsZero(v) {
			terms = append(terms, Term[C]{v, t.Exp})
		}
	}
	//
	return Polynomial[C]{p.ring, terms}
}

// Mul returns p * q.  In a solvable ring the order of operands matters.
func (p Polynomial[C]) Mul(q Polynomial[C]) Polynomial[C] {
	p.ring.mustMatch(q.ring)
	//
	var acc []Term[C]
	//
	for _, t := range p.terms {
		acc = p.ring.merge(acc, q.MulTerm(t.Coeff, t.Exp, Left).terms, false)
	}
	//
	return Polynomial[C]{p.ring, acc}
}

// MulTerm multiplies this polynomial by the single term c*x^m, either on the
// left (giving c*x^m*p) or on the right (giving p*c*x^m).  This panics with an
// error wrapping ErrRingMismatch if m does not have one exponent per variable.
func (p Polynomial[C]) MulTerm(c C, m Monomial, side Side) Polynomial[C] {
	if err := p.ring.checkMonomial(m); err != nil {
		panic(err)
	} else if p.ring.domain.IsZero(c) {
		return p.ring.Zero()
	}
	//
	return p.mulMonomial(m, side == Left).Scale(c)
}

// Pow returns p^n, where p^0 is one, by repeated squaring.  Powers of p
// commute with each other, hence this is also valid in solvable rings.
func (p Polynomial[C]) Pow(n uint32) Polynomial[C] {
	var res = p.ring.One()
	//
	for base := p; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		// Avoid squaring beyond what is needed
		if n > 1 {
			base = base.Mul(base)
		}
	}
	//
	return res
}

// Monic divides this polynomial by its leading coefficient, failing if that is
// not possible in the coefficient domain.
func (p Polynomial[C]) Monic() (Polynomial[C], error) {
	if p.IsZero() {
		return p, nil
	}
	//
	return p.divide(p.LeadingCoefficient())
}

// Primitive divides this polynomial by the gcd of its coefficients.  Over a
// field this has no effect.
func (p Polynomial[C]) Primitive() Polynomial[C] {
	content := p.content()
	//
	if p.IsZero() || p.ring.domain.IsOne(content) {
		return p
	}
	//
	return p.mustDivide(content)
}

// Normalize returns the canonical associate of this polynomial.  Over a field
// this is the monic polynomial.  Over the integers it is the primitive
// polynomial with positive leading coefficient.  Polynomials which generate the
// same principal ideal have the same normal form.
func (p Polynomial[C]) Normalize() Polynomial[C] {
	if p.IsZero() {
		return p
	}
	//
	var (
		domain = p.ring.domain
		unit   = domain.Mul(p.content(), domain.Unit(p.LeadingCoefficient()))
	)
	//
	if domain.IsOne(unit) {
		return p
	}
	//
	return p.mustDivide(unit)
}

func (p Polynomial[C]) content() C {
	var coeffs = make([]C, len(p.terms))
	//
	for i, t := range p.terms {
		coeffs[i] = t.Coeff
	}
	//
	return coeff.Content(p.ring.domain, coeffs...)
}

func (p Polynomial[C]) divide(c C) (Polynomial[C], error) {
	var terms = make([]Term[C], len(p.terms))
	//
	for i, t := range p.terms {
		v, err := p.ring.domain.Div(t.Coeff, c)
		if err != nil {
			return p, err
		}
		//
		terms[i] = Term[C]{v, t.Exp}
	}
	//
	return Polynomial[C]{p.ring, terms}, nil
}

func (p Polynomial[C]) mustDivide(c C) Polynomial[C] {
	res, err := p.divide(c)
	if err != nil {
		panic(err)
	}
	//
	return res
}

// mulMonomial multiplies by x^m on the left or right.
func (p Polynomial[C]) mulMonomial(m Monomial, left bool) Polynomial[C] {
	if p.ring.IsCommutative() {
		// Order is compatible with multiplication, hence terms remain sorted.
		terms := make([]Term[C], len(p.terms))
		for i, t := range p.terms {
			terms[i] = Term[C]{t.Coeff, t.Exp.Mul(m)}
		}
		//
		return Polynomial[C]{p.ring, terms}
	}
	//
	var acc []Term[C]
	//
	for _, t := range p.terms {
		var prod Polynomial[C]
		//
		if left {
			prod = p.ring.product(m, t.Exp)
		} else {
			prod = p.ring.product(t.Exp, m)
		}
		//
		acc = p.ring.merge(acc, prod.Scale(t.Coeff).terms, false)
	}
	//
	return Polynomial[C]{p.ring, acc}
}

// merge combines two sorted term sequences into their sum (or difference),
// dropping any terms which cancel.
func (r *Ring[C]) merge(lhs []Term[C], rhs []Term[C], negate bool) []Term[C] {
	var (
		terms = make([]Term[C], 0, len(lhs)+len(rhs))
		i, j  int
	)
	//
	for i < len(lhs) && j < len(rhs) {
		switch c := r.order.Compare(lhs[i].Exp, rhs[j].Exp); {
		case c > 0:
			terms = append(terms, lhs[i])
			i++
		case c < 0:
			terms = append(terms, r.negate(rhs[j], negate))
			j++
		default:
			var v C
			//
			if negate {
				v = r.domain.Sub(lhs[i].Coeff, rhs[j].Coeff)
			} else {
				v = r.domain.Add(lhs[i].Coeff, rhs[j].Coeff)
			}
			//
			if !r.domain.IsZero(v) {
				terms = append(terms, Term[C]{v, lhs[i].Exp})
			}
			//
			i++
			j++
		}
	}
	//
	terms = append(terms, lhs[i:]...)
	//
	for ; j < len(rhs); j++ {
		terms = append(terms, r.negate(rhs[j], negate))
	}
	//
	return terms
}

func (r *Ring[C]) negate(t Term[C], negate bool) Term[C] {
	if negate {
		return Term[C]{r.domain.Neg(t.Coeff), t.Exp}
	}
	//
	return t
}

// String renders this polynomial in the notation accepted by the parser, for
// example "x^2*y - 3*x + 1".
func (p Polynomial[C]) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var (
		builder strings.Builder
		domain  = p.ring.domain
	)
	//
	for i, t := range p.terms {
		c := domain.String(t.Coeff)
		negative := strings.HasPrefix(c, "-")
		//
		if negative {
			c = c[1:]
		}
		//
		switch {
		case i == 0 && negative:
			builder.WriteString("-")
		case i != 0 && negative:
			builder.WriteString(" - ")
		case i != 0:
			builder.WriteString(" + ")
		}
		//
		switch {
		case t.Exp.IsOne():
			builder.WriteString(c)
		case c == "1":
			builder.WriteString(t.Exp.Format(p.ring.names))
		default:
			builder.WriteString(fmt.Sprintf("%s*%s", c, t.Exp.Format(p.ring.names)))
		}
	}
	//
	return builder.String()
}
