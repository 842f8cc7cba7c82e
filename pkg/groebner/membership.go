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

// Member checks whether p belongs to the (left) ideal generated by a Gröbner
// basis, by checking its normal form is zero.  The answer is only meaningful if
// the basis is indeed a Gröbner basis.
func Member[C any](p poly.Polynomial[C], basis []poly.Polynomial[C]) (bool, error) {
	return SidedMember(p, basis, Left)
}

// SidedMember checks membership of p in the ideal of a given side generated by
// a Gröbner basis.  Two-sided ideals are represented by left Gröbner bases.
func SidedMember[C any](p poly.Polynomial[C], basis []poly.Polynomial[C], side Side) (bool, error) {
	if err := side.check(); err != nil {
		return false, err
	}
	//
	nf, err := SidedNormalForm(p, basis, side.Reduction())
	if err != nil {
		return false, err
	}
	//
	return nf.IsZero(), nil
}

// IsGB checks whether a basis is a Gröbner basis, by checking that every
// S-polynomial reduces to zero.  For two-sided ideals of noncommutative rings,
// right multiples of each element by each variable must also reduce to zero.
func IsGB[C any](basis []poly.Polynomial[C], side Side) (bool, error) {
	var nonzero []poly.Polynomial[C]
	//
	if len(basis) == 0 {
		return true, nil
	} else if err := validate(basis, Sequential().WithSide(side)); err != nil {
		return false, err
	}
	//
	for _, g := range basis {
		if !g.IsZero() {
			nonzero = append(nonzero, g)
		}
	}
	//
	var (
		ring  = basis[0].Ring()
		red   = side.Reduction()
		st    = newState(ring, Sequential().WithSide(side))
	)
	//
	for i := range nonzero {
		for j := i + 1; j < len(nonzero); j++ {
			if ok, _ := SidedMember(SPolynomial(nonzero[i], nonzero[j], red), nonzero, side); !ok {
				return false, nil
			}
		}
		//
		if !st.closeRight {
			continue
		}
		//
		for v := range ring.NumVars() {
			x := poly.UnitMonomial(ring.NumVars(), v)
			//
			if ok, _ := SidedMember(nonzero[i].MulTerm(ring.Domain().One(), x, poly.Right), nonzero, side); !ok {
				return false, nil
			}
		}
	}
	//
	return true, nil
}

// Equivalent checks whether two Gröbner bases generate the same ideal, by
// checking every element of each is a member of the other.
func Equivalent[C any](lhs []poly.Polynomial[C], rhs []poly.Polynomial[C], side Side) (bool, error) {
	for _, pair := range [][2][]poly.Polynomial[C]{{lhs, rhs}, {rhs, lhs}} {
		for _, p := range pair[0] {
			if ok, err := SidedMember(p, pair[1], side); err != nil || !ok {
				return false, err
			}
		}
	}
	//
	return true, nil
}
