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
	"slices"

	"github.com/consensys/go-groebner/pkg/poly"
)

// MinimalGB removes zero elements, and elements whose leading monomial is
// divisible by that of another element.  Of several elements with the same
// leading monomial, only the first is kept.  Applied to a Gröbner basis, the
// result is a minimal Gröbner basis of the same ideal.
func MinimalGB[C any](basis []poly.Polynomial[C]) ([]poly.Polynomial[C], error) {
	if len(basis) == 0 {
		return nil, nil
	} else if err := basis[0].Ring().CheckRing(basis...); err != nil {
		return nil, err
	}
	//
	return minimal(basis), nil
}

// ReducedGB turns a Gröbner basis into the reduced Gröbner basis of the same
// ideal: a minimal basis in which no term of any element is reducible by the
// others.  Elements are normalised and sorted by increasing leading monomial.
// For a given ideal and term order the result is unique.
func ReducedGB[C any](basis []poly.Polynomial[C], side Side) ([]poly.Polynomial[C], error) {
	if len(basis) == 0 {
		return nil, nil
	} else if err := validate(basis, Sequential().WithSide(side)); err != nil {
		return nil, err
	}
	//
	return reduce(context.Background(), basis, side.Reduction())
}

func minimal[C any](basis []poly.Polynomial[C]) []poly.Polynomial[C] {
	var result []poly.Polynomial[C]
	//
	for i, g := range basis {
		if !g.IsZero() && !isRedundant(uint(i), basis) {
			result = append(result, g)
		}
	}
	//
	return result
}

func isRedundant[C any](i uint, basis []poly.Polynomial[C]) bool {
	var lm = basis[i].LeadingMonomial()
	//
	for j, h := range basis {
		if uint(j) == i || h.IsZero() || !lm.DividesBy(h.LeadingMonomial()) {
			continue
		} else if uint(j) < i || !lm.Equal(h.LeadingMonomial()) {
			return true
		}
	}
	//
	return false
}

func reduce[C any](ctx context.Context, basis []poly.Polynomial[C], side poly.Side) ([]poly.Polynomial[C], error) {
	var (
		gs     = minimal(basis)
		result = make([]poly.Polynomial[C], len(gs))
	)
	//
	for i, g := range gs {
		others := slices.Delete(slices.Clone(gs), i, i+1)
		//
		h, err := normalForm(ctx, g, others, side)
		if err != nil {
			return nil, err
		}
		//
		result[i] = h.Normalize()
	}
	//
	if len(result) > 0 {
		order := result[0].Ring().Order()
		//
		slices.SortFunc(result, func(a, b poly.Polynomial[C]) int {
			return order.Compare(a.LeadingMonomial(), b.LeadingMonomial())
		})
	}
	//
	return result, nil
}
