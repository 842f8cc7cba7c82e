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
package groebner

import (
	"context"
	"fmt"

	"github.com/consensys/go-groebner/pkg/poly"
)

// How many reduction steps between checks for cancellation.
const cancelCheckInterval = 64

// NormalForm reduces p modulo a basis using left reduction (which is the only
// reduction in commutative rings).  See SidedNormalForm.
func NormalForm[C any](p poly.Polynomial[C], basis []poly.Polynomial[C]) (poly.Polynomial[C], error) {
	return SidedNormalForm(p, basis, poly.Left)
}

// SidedNormalForm reduces p modulo a basis until no term of the remainder is
// divisible by the leading monomial of any basis element.  At each step, the
// first basis element (in list order) whose leading monomial divides the
// current leading term is used.  Over a field the result is the unique normal
// form for a Gröbner basis.  Otherwise (e.g. over the integers), reduction
// multiplies the remainder by constants as needed, so the result is only
// determined up to a nonzero constant factor.
func SidedNormalForm[C any](p poly.Polynomial[C], basis []poly.Polynomial[C], side poly.Side) (poly.Polynomial[C],
	error) {
	//
	if err := p.Ring().CheckRing(basis...); err != nil {
		return p, err
	}
	//
	return normalForm(context.Background(), p, basis, side)
}

// IsTopReducible checks whether the leading monomial of p is divisible by the
// leading monomial of some basis element.
func IsTopReducible[C any](p poly.Polynomial[C], basis []poly.Polynomial[C]) bool {
	if p.IsZero() {
		return false
	}
	//
	_, _, ok := findDivisor(p.LeadingMonomial(), basis)
	//
	return ok
}

// IsReducible checks whether any term of p is divisible by the leading
// monomial of some basis element.
func IsReducible[C any](p poly.Polynomial[C], basis []poly.Polynomial[C]) bool {
	for i := range p.Len() {
		if _, _, ok := findDivisor(p.Term(i).Exp, basis); ok {
			return true
		}
	}
	//
	return false
}

// normalForm is the reduction engine.  It is cancellable, since it dominates
// the running time of all engines.
func normalForm[C any](ctx context.Context, p poly.Polynomial[C], basis []poly.Polynomial[C],
	side poly.Side) (poly.Polynomial[C], error) {
	//
	var (
		ring   = p.Ring()
		domain = ring.Domain()
		one    = domain.One()
		rem    = p
		// Terms of the result (in descending order)
		out   []poly.Term[C]
		steps uint
	)
	//
	for !rem.IsZero() {
		if steps++; steps%cancelCheckInterval == 0 && ctx.Err() != nil {
			return p, ctx.Err()
		}
		//
		lt := rem.LeadingTerm()
		//
		g, quotient, ok := findDivisor(lt.Exp, basis)
		if !ok {
			// Irreducible, so move to output
			out = append(out, lt)
			rem = rem.Tail()
			//
			continue
		}
		// Multiply divisor so its leading monomial matches.
		q := g.MulTerm(one, quotient, side)
		lc := q.LeadingCoefficient()
		//
		if a, err := domain.Div(lt.Coeff, lc); err == nil {
			rem = rem.Sub(q.Scale(a))
		} else {
			// Pseudo reduction: scale the remainder (and output) so that its
			// leading coefficient becomes divisible.
			var (
				gcd = domain.Gcd(lt.Coeff, lc)
				a   = mustDiv(domain.Div(lc, gcd))
				b   = mustDiv(domain.Div(lt.Coeff, gcd))
			)
			//
			rem = rem.Scale(a).Sub(q.Scale(b))
			//
			for i := range out {
				out[i].Coeff = domain.Mul(a, out[i].Coeff)
			}
		}
	}
	//
	res, err := ring.FromTerms(out...)
	if err != nil {
		// Cannot happen, since all terms came from the ring itself.
		panic(err)
	}
	//
	return res, nil
}

// findDivisor returns the first basis element whose leading monomial divides m,
// along with the quotient.
func findDivisor[C any](m poly.Monomial, basis []poly.Polynomial[C]) (poly.Polynomial[C], poly.Monomial, bool) {
	for _, g := range basis {
		if g.IsZero() {
			continue
		} else if quotient, ok := g.LeadingMonomial().Divides(m); ok {
			return g, quotient, true
		}
	}
	//
	return poly.Polynomial[C]{}, nil, false
}

func mustDiv[C any](val C, err error) C {
	if err != nil {
		panic(fmt.Sprintf("inexact division by gcd (%s)", err))
	}
	//
	return val
}
