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
	"slices"

	"github.com/consensys/go-groebner/pkg/poly"
)

// Intersect computes the reduced Gröbner basis of the intersection of an ideal
// with a subring, where the ideal is given by its generators.  The variables of
// the subring must be the trailing variables of the generators' ring, and both
// rings must be commutative with the same coefficient domain.  A lexicographic
// basis eliminates the leading variables, hence its elements which only
// involve the trailing variables generate the intersection.  These are then
// reduced under the subring's own term order.
func Intersect[C any](ctx context.Context, generators []poly.Polynomial[C], subring *poly.Ring[C]) (
	[]poly.Polynomial[C], error) {
	if len(generators) == 0 {
		return nil, nil
	}
	//
	var ring = generators[0].Ring()
	//
	if err := ring.CheckRing(generators...); err != nil {
		return nil, err
	} else if err := checkSubring(ring, subring); err != nil {
		return nil, err
	}
	//
	var (
		offset = ring.NumVars() - subring.NumVars()
		lex    = ring
	)
	//
	if ring.Order() != poly.Lex {
		lex = poly.NewRing(ring.Names(), ring.Domain(), poly.Lex)
	}
	//
	converted, err := transfer(generators, lex, 0)
	if err != nil {
		return nil, err
	}
	//
	gb, err := GB(ctx, converted, Sequential())
	if err != nil {
		return nil, err
	}
	// Elements free of the leading variables
	gb = slices.DeleteFunc(gb, func(g poly.Polynomial[C]) bool {
		return !eliminates(g, offset)
	})
	//
	contracted, err := transfer(gb, subring, offset)
	if err != nil {
		return nil, err
	}
	//
	return GB(ctx, contracted, Sequential())
}

func checkSubring[C any](ring, subring *poly.Ring[C]) error {
	var (
		names = ring.Names()
		tail  = subring.Names()
	)
	//
	switch {
	case !ring.IsCommutative() || !subring.IsCommutative():
		return fmt.Errorf("%w: intersection requires commutative rings", poly.ErrRingMismatch)
	case len(tail) > len(names) || !slices.Equal(names[len(names)-len(tail):], tail):
		return fmt.Errorf("%w: variables of %s do not end %s", poly.ErrRingMismatch, subring, ring)
	case ring.Domain().Name() != subring.Domain().Name():
		return fmt.Errorf("%w: %s has a different domain from %s", poly.ErrRingMismatch, subring, ring)
	}
	//
	return nil
}

// eliminates checks whether none of the first n variables occurs in p.
func eliminates[C any](p poly.Polynomial[C], n uint) bool {
	for i := range p.Len() {
		for _, e := range p.Term(i).Exp[:n] {
			if e != 0 {
				return false
			}
		}
	}
	//
	return true
}

// transfer rewrites polynomials into a target ring by dropping the first
// offset exponents of every term, which must all be zero.
func transfer[C any](polys []poly.Polynomial[C], target *poly.Ring[C], offset uint) ([]poly.Polynomial[C], error) {
	var res = make([]poly.Polynomial[C], len(polys))
	//
	for i, p := range polys {
		terms := make([]poly.Term[C], p.Len())
		//
		for j := range p.Len() {
			t := p.Term(j)
			terms[j] = poly.Term[C]{Coeff: t.Coeff, Exp: slices.Clone(t.Exp[offset:])}
		}
		//
		q, err := target.FromTerms(terms...)
		if err != nil {
			return nil, err
		}
		//
		res[i] = q
	}
	//
	return res, nil
}
