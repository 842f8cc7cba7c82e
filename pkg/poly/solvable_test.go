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
	"math/big"
	"testing"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Weyl algebra in x and d, where d*x = x*d + 1.
func weylAlgebra(t *testing.T) *Ring[*big.Rat] {
	qq := coeff.Rationals()
	//
	ring, err := NewSolvableRing([]string{"x", "d"}, qq, Lex, Relation[*big.Rat]{
		Upper: 1,
		Lower: 0,
		Terms: []Term[*big.Rat]{NewTerm(qq.One(), 1, 1), NewTerm(qq.One(), 0, 0)},
	})
	require.NoError(t, err)
	//
	return ring
}

func TestSolvable_Products(t *testing.T) {
	ring := weylAlgebra(t)
	x, d := ring.Var(0), ring.Var(1)
	//
	assert.Equal(t, Solvable, ring.Kind())
	checkPolynomial(t, "x*d + 1", d.Mul(x))
	checkPolynomial(t, "x*d", x.Mul(d))
	checkPolynomial(t, "x*d^2 + 2*d", d.Mul(d).Mul(x))
	checkPolynomial(t, "x^2*d + 2*x", d.Mul(x).Mul(x))
	// Parsing multiplies left-to-right
	checkPolynomial(t, "x^2*d^2 + 4*x*d + 2", parse(t, ring, "d^2*x^2"))
	// Commutator
	checkPolynomial(t, "1", d.Mul(x).Sub(x.Mul(d)))
}

func TestSolvable_Associative(t *testing.T) {
	ring := weylAlgebra(t)
	ps := []Polynomial[*big.Rat]{
		parse(t, ring, "d + x"), parse(t, ring, "d^2 - 1"), parse(t, ring, "x*d + x^2"), parse(t, ring, "2x - d^3"),
	}
	//
	for _, a := range ps {
		for _, b := range ps {
			for _, c := range ps {
				assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
			}
		}
	}
}

func TestSolvable_Pow(t *testing.T) {
	ring := weylAlgebra(t)
	//
	for _, text := range []string{"d*x", "x*d + d", "d + x"} {
		p := parse(t, ring, text)
		//
		for n := range uint32(6) {
			expected := ring.One()
			for range n {
				expected = expected.Mul(p)
			}
			//
			assert.True(t, expected.Equal(p.Pow(n)), "(%s)^%d", text, n)
		}
	}
}

func TestSolvable_MulTerm(t *testing.T) {
	ring := weylAlgebra(t)
	p := parse(t, ring, "x")
	one := big.NewRat(1, 1)
	//
	checkPolynomial(t, "x*d + 1", p.MulTerm(one, NewMonomial(0, 1), Left))
	checkPolynomial(t, "x*d", p.MulTerm(one, NewMonomial(0, 1), Right))
}

func TestSolvable_InvalidRelations(t *testing.T) {
	var (
		qq    = coeff.Rationals()
		names = []string{"x", "d"}
		xd    = NewTerm(qq.One(), 1, 1)
		one   = NewTerm(qq.One(), 0, 0)
	)
	// Wrong way round
	_, err := NewSolvableRing(names, qq, Lex, Relation[*big.Rat]{0, 1, []Term[*big.Rat]{xd, one}})
	assert.ErrorIs(t, err, ErrRelation)
	// Wrong leading monomial
	_, err = NewSolvableRing(names, qq, Lex, Relation[*big.Rat]{1, 0, []Term[*big.Rat]{one}})
	assert.ErrorIs(t, err, ErrRelation)
	// Duplicate
	_, err = NewSolvableRing(names, qq, Lex, Relation[*big.Rat]{1, 0, []Term[*big.Rat]{xd}},
		Relation[*big.Rat]{1, 0, []Term[*big.Rat]{xd, one}})
	assert.ErrorIs(t, err, ErrRelation)
	// Out of bounds
	_, err = NewSolvableRing(names, qq, Lex, Relation[*big.Rat]{2, 0, []Term[*big.Rat]{xd}})
	assert.ErrorIs(t, err, ErrRelation)
}

func TestSolvable_NoRelations(t *testing.T) {
	ring, err := NewSolvableRing([]string{"x", "y"}, coeff.Rationals(), Lex)
	require.NoError(t, err)
	//
	assert.Equal(t, Commutative, ring.Kind())
	assert.True(t, ring.Compatible(NewRing([]string{"x", "y"}, coeff.Rationals(), Lex)))
}

func TestSolvable_Incompatible(t *testing.T) {
	r1, r2 := weylAlgebra(t), weylAlgebra(t)
	//
	assert.True(t, r1.Compatible(r1))
	assert.False(t, r1.Compatible(r2))
	assert.ErrorIs(t, r1.CheckRing(parse(t, r2, "x")), ErrRingMismatch)
}
