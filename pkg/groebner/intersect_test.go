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
	"math/big"
	"testing"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	for _, tc := range []struct {
		order    poly.Order
		vars     []string
		gens     string
		subvars  []string
		suborder poly.Order
		expected []string
	}{
		// Any term order on the full ring, since a lex basis is computed
		{poly.GradedRevLex, []string{"x", "y"}, "x*y - 1, x^2 + y", []string{"y"}, poly.Lex, []string{"y^3 + 1"}},
		{poly.Lex, []string{"x", "y"}, "x*y - 1, x^2 + y", []string{"y"}, poly.Lex, []string{"y^3 + 1"}},
		{poly.Lex, []string{"x", "y", "z"}, "x - y^2, y - z^3", []string{"y", "z"}, poly.Lex, []string{"y - z^3"}},
		// Contraction may be the zero ideal
		{poly.Lex, []string{"x", "y", "z"}, "x - y^2, y - z^3", []string{"z"}, poly.Lex, []string{}},
		// Result is reduced with respect to the subring's order
		{poly.Lex, []string{"t", "x", "y"}, "x - t^3, y - t", []string{"x", "y"}, poly.Lex,
			[]string{"x - y^3"}},
		{poly.Lex, []string{"t", "x", "y"}, "x - t^3, y - t", []string{"x", "y"}, poly.GradedRevLex,
			[]string{"y^3 - x"}},
		{poly.Lex, []string{"t", "x", "y"}, "x - t^2, y - t^3", []string{"x", "y"}, poly.GradedRevLex,
			[]string{"x^3 - y^2"}},
		// Unit ideal
		{poly.GradedLex, []string{"x", "y"}, "x, x - 1", []string{"y"}, poly.Lex, []string{"1"}},
		// Whole ring
		{poly.Lex, []string{"x", "y"}, "x*y - 1, x^2 + y", []string{"x", "y"}, poly.GradedLex,
			[]string{"y^2 + x", "x*y - 1", "x^2 + y"}},
	} {
		t.Run(tc.gens, func(t *testing.T) {
			var (
				ring    = qqRing(tc.order, tc.vars...)
				subring = qqRing(tc.suborder, tc.subvars...)
			)
			//
			res, err := Intersect(context.Background(), parseAll(t, ring, tc.gens), subring)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, toStrings(t, res))
			//
			for _, p := range res {
				assert.Same(t, subring, p.Ring())
			}
		})
	}
}

func TestIntersect_Integers(t *testing.T) {
	var (
		ring    = zzRing(poly.GradedRevLex, "x", "y")
		subring = zzRing(poly.Lex, "y")
	)
	//
	res, err := Intersect(context.Background(), parseAll(t, ring, "2x - y, x*y - 3"), subring)
	require.NoError(t, err)
	assert.Equal(t, []string{"y^2 - 6"}, toStrings(t, res))
}

func TestIntersect_Trinks(t *testing.T) {
	if testing.Short() {
		t.Skip("three lex bases of Trinks")
	}
	//
	var (
		ring    = qqRing(poly.Lex, trinksVars...)
		gens    = parseAll(t, ring, trinks)
		subring = qqRing(poly.Lex, "P", "W")
	)
	//
	gb, err := GB(context.Background(), gens, Sequential())
	require.NoError(t, err)
	//
	res, err := Intersect(context.Background(), gens, subring)
	require.NoError(t, err)
	//
	ok, err := IsGB(res, Left)
	require.NoError(t, err)
	assert.True(t, ok)
	// Every element belongs to the ideal
	for _, p := range res {
		ok, err := Member(parse(t, ring, p.String()), gb)
		require.NoError(t, err)
		assert.True(t, ok, "%s not in ideal", p)
	}
	// Every element of the ideal in P and W belongs to the intersection
	for _, g := range gb {
		if eliminates(g, 4) {
			ok, err := Member(parse(t, subring, g.String()), res)
			require.NoError(t, err)
			assert.True(t, ok, "%s not in intersection", g)
		}
	}
	// Contracting in two steps gives the same result
	w, err := Intersect(context.Background(), gens, qqRing(poly.Lex, "W"))
	require.NoError(t, err)
	//
	again, err := Intersect(context.Background(), res, qqRing(poly.Lex, "W"))
	require.NoError(t, err)
	assert.Equal(t, toStrings(t, w), toStrings(t, again))
}

func TestIntersect_Errors(t *testing.T) {
	var (
		ring = qqRing(poly.Lex, "x", "y")
		gens = parseAll(t, ring, "x*y - 1")
	)
	// Not the trailing variables
	_, err := Intersect(context.Background(), gens, qqRing(poly.Lex, "x"))
	assert.ErrorIs(t, err, poly.ErrRingMismatch)
	_, err = Intersect(context.Background(), gens, qqRing(poly.Lex, "x", "y", "z"))
	assert.ErrorIs(t, err, poly.ErrRingMismatch)
	// Different domain
	mod, err := coeff.NewModular(big.NewInt(7))
	require.NoError(t, err)
	//
	zz := zzRing(poly.Lex, "x", "y")
	_, err = Intersect(context.Background(), parseAll(t, zz, "x*y - 1"),
		poly.NewRing([]string{"y"}, coeff.Domain[*big.Int](mod), poly.Lex))
	assert.ErrorIs(t, err, poly.ErrRingMismatch)
	// Noncommutative
	weyl := weylAlgebra(t)
	_, err = Intersect(context.Background(), parseAll(t, weyl, "x*d - 1"), qqRing(poly.Lex, "d"))
	assert.ErrorIs(t, err, poly.ErrRingMismatch)
	// Nothing to intersect
	res, err := Intersect[*big.Rat](context.Background(), nil, qqRing(poly.Lex, "y"))
	require.NoError(t, err)
	assert.Empty(t, res)
}
