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
	"github.com/consensys/go-groebner/pkg/poly"
)

// SPolynomial constructs the S-polynomial of f and g, multiplying them on the
// given side so that their leading monomials both become the lcm.  Cofactors
// are taken from the actual leading coefficients after multiplication (which in
// a solvable ring may differ from those of f and g), divided by their gcd so
// that no division is needed over the integers.
func SPolynomial[C any](f, g poly.Polynomial[C], side poly.Side) poly.Polynomial[C] {
	var (
		domain = f.Ring().Domain()
		lcm    = f.LeadingMonomial().Lcm(g.LeadingMonomial())
		u, _   = f.LeadingMonomial().Divides(lcm)
		v, _   = g.LeadingMonomial().Divides(lcm)
		p      = f.MulTerm(domain.One(), u, side)
		q      = g.MulTerm(domain.One(), v, side)
		a      = p.LeadingCoefficient()
		b      = q.LeadingCoefficient()
		gcd    = domain.Gcd(a, b)
	)
	//
	return p.Scale(mustDiv(domain.Div(b, gcd))).Sub(q.Scale(mustDiv(domain.Div(a, gcd))))
}
