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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvable_Sides(t *testing.T) {
	ring := weylAlgebra(t)
	//
	for _, tc := range []struct {
		gens     string
		side     Side
		expected []string
	}{
		{"d, x*d", Left, []string{"d"}},
		{"d, x*d", Right, []string{"1"}},
		{"d, x*d", TwoSided, []string{"1"}},
		{"x, d", Left, []string{"1"}},
		{"x*d - 1", Left, []string{"x*d - 1"}},
		{"x", Right, []string{"x"}},
	} {
		t.Run(tc.side.String()+" "+tc.gens, func(t *testing.T) {
			for _, mode := range []Mode{Sequential(), Parallel(1), Parallel(3)} {
				gb := computeGB(t, ring, tc.gens, mode.WithSide(tc.side))
				assert.Equal(t, tc.expected, toStrings(t, gb), "workers=%d", mode.Workers())
			}
		})
	}
}

func TestSolvable_TwoSidedContainsOneSided(t *testing.T) {
	ring := weylAlgebra(t)
	//
	for _, gens := range []string{"d, x*d", "x*d - 1", "x^2, d"} {
		twoSided := computeGB(t, ring, gens, TwoSidedGB())
		//
		for _, mode := range []Mode{LeftGB(), RightGB()} {
			for _, p := range computeGB(t, ring, gens, mode) {
				ok, err := SidedMember(p, twoSided, TwoSided)
				require.NoError(t, err)
				assert.True(t, ok, "%s of (%s) not in two-sided ideal", p, gens)
			}
		}
	}
}

func TestSolvable_RandomSystems(t *testing.T) {
	var (
		rng   = rand.New(rand.NewPCG(5, 8))
		rings = map[string]*poly.Ring[*big.Rat]{
			"weyl": weylAlgebra(t),
			"sl2":  sl2Algebra(t),
		}
	)
	//
	for _, name := range []string{"weyl", "sl2"} {
		ring := rings[name]
		//
		for i := range 8 {
			gens := randomSystem(rng, ring, 1+rng.UintN(2), 2, 2)
			//
			for _, side := range []Side{Left, Right, TwoSided} {
				t.Run(fmt.Sprintf("%s/%d/%s", name, i, side), func(t *testing.T) {
					mode := Sequential().WithSide(side)
					expected := gbStrings(t, gens, mode)
					//
					assert.Equal(t, expected, gbStrings(t, gens, mode.withoutCriteria()), "%s", gens)
					assert.Equal(t, expected, gbStrings(t, gens, Parallel(2).WithSide(side)), "%s", gens)
					//
					gb, err := GB(context.Background(), gens, mode)
					require.NoError(t, err)
					//
					ok, err := IsGB(gb, side)
					require.NoError(t, err)
					assert.True(t, ok, "%s", gens)
					//
					for _, g := range gens {
						ok, err := SidedMember(g, gb, side)
						require.NoError(t, err)
						assert.True(t, ok, "%s not in %s", g, gb)
					}
				})
			}
		}
	}
}

func TestSolvable_SidedModes(t *testing.T) {
	ring := weylAlgebra(t)
	//
	assert.Equal(t, []string{"d"}, toStrings(t, computeGB(t, ring, "d, x*d", LeftGB())))
	assert.Equal(t, []string{"1"}, toStrings(t, computeGB(t, ring, "d, x*d", RightGB())))
	assert.Equal(t, []string{"1"}, toStrings(t, computeGB(t, ring, "d, x*d", TwoSidedGB())))
}

func TestSolvable_Membership(t *testing.T) {
	var (
		ring  = weylAlgebra(t)
		basis = parseAll(t, ring, "x")
	)
	// d*x = x*d + 1 is a left multiple of x, but not a right multiple.
	ok, err := SidedMember(parse(t, ring, "d*x"), basis, Left)
	require.NoError(t, err)
	assert.True(t, ok)
	//
	ok, err = SidedMember(parse(t, ring, "d*x"), basis, Right)
	require.NoError(t, err)
	assert.False(t, ok)
	//
	ok, err = SidedMember(parse(t, ring, "x*d"), basis, Right)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSolvable_IsGB(t *testing.T) {
	var (
		ring  = weylAlgebra(t)
		basis = parseAll(t, ring, "d")
	)
	//
	ok, err := IsGB(basis, Left)
	require.NoError(t, err)
	assert.True(t, ok)
	// Right multiple d*x reduces to 1
	ok, err = IsGB(basis, TwoSided)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolvable_CommutativeSides(t *testing.T) {
	ring := qqRing(poly.Lex, "x", "y")
	expected := []string{"y^3 + 1", "x + y^2"}
	// All sides coincide in commutative rings
	for _, side := range []Side{Left, Right, TwoSided} {
		assert.Equal(t, expected, toStrings(t, computeGB(t, ring, "x*y - 1, x^2 + y", Sequential().WithSide(side))))
	}
}

func TestSolvable_RingMismatch(t *testing.T) {
	var (
		r1 = weylAlgebra(t)
		r2 = weylAlgebra(t)
	)
	// Distinct solvable rings are never compatible
	_, err := GB(context.Background(), []poly.Polynomial[*big.Rat]{r1.Var(0), r2.Var(1)}, Sequential())
	assert.ErrorIs(t, err, poly.ErrRingMismatch)
}

// Weyl algebra in x and d, where d*x = x*d + 1.
func weylAlgebra(t *testing.T) *poly.Ring[*big.Rat] {
	spec, err := poly.ParseRingSpec("QQ(x,d) L RelationTable((d), (x), (x*d + 1))")
	require.NoError(t, err)
	//
	ring, err := poly.NewRingFromSpec(spec, coeff.Rationals())
	require.NoError(t, err)
	//
	return ring
}

// Universal enveloping algebra of sl2, where [e,f] = h, [h,e] = 2e and
// [h,f] = -2f.
func sl2Algebra(t *testing.T) *poly.Ring[*big.Rat] {
	spec, err := poly.ParseRingSpec("QQ(e,f,h) G RelationTable((f), (e), (e*f - h), (h), (e), (e*h + 2*e), " +
		"(h), (f), (f*h - 2*f))")
	require.NoError(t, err)
	//
	ring, err := poly.NewRingFromSpec(spec, coeff.Rationals())
	require.NoError(t, err)
	//
	return ring
}
