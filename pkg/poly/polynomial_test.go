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
	"math"
	"math/big"
	"testing"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomial_Mul(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Rationals(), Lex)
	f := parse(t, ring, "x*y - 1")
	g := parse(t, ring, "x^2 + y")
	//
	checkPolynomial(t, "x^3*y - x^2 + x*y^2 - y", f.Mul(g))
	checkPolynomial(t, "x^3*y - x^2 + x*y^2 - y", g.Mul(f))
	checkPolynomial(t, "x^2 + x*y + y - 1", f.Add(g))
	checkPolynomial(t, "-x^2 + x*y - y - 1", f.Sub(g))
	checkPolynomial(t, "0", f.Sub(f))
}

func TestPolynomial_Scale(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Rationals(), GradedRevLex)
	f := parse(t, ring, "x*y - 1")
	//
	checkPolynomial(t, "3/2*x*y - 3/2", f.Scale(big.NewRat(3, 2)))
	checkPolynomial(t, "-x*y + 1", f.Neg())
	assert.True(t, f.Scale(big.NewRat(0, 1)).IsZero())
	checkPolynomial(t, "x^2*y^3 - x*y^2", f.MulTerm(big.NewRat(1, 1), NewMonomial(1, 2), Left))
}

func TestPolynomial_FromTerms(t *testing.T) {
	var (
		zz   = coeff.Integers()
		ring = NewRing([]string{"x", "y"}, zz, Lex)
	)
	//
	p, err := ring.FromTerms(
		NewTerm(big.NewInt(1), 0, 0),
		NewTerm(big.NewInt(2), 0, 1),
		NewTerm(big.NewInt(3), 1, 0),
		NewTerm(big.NewInt(-2), 0, 1),
	)
	require.NoError(t, err)
	checkPolynomial(t, "3*x + 1", p)
	assert.True(t, p.Equal(parse(t, ring, "1 + 3x")))
	//
	_, err = ring.FromTerms(NewTerm(big.NewInt(1), 0, 0, 1))
	assert.ErrorIs(t, err, ErrRingMismatch)
}

func TestPolynomial_Normalize(t *testing.T) {
	zz := NewRing([]string{"x", "y"}, coeff.Integers(), Lex)
	qq := NewRing([]string{"x", "y"}, coeff.Rationals(), Lex)
	//
	checkPolynomial(t, "3*x - 2", parse(t, zz, "-6x + 4").Normalize())
	checkPolynomial(t, "-3*x + 2", parse(t, zz, "-6x + 4").Primitive())
	checkPolynomial(t, "x + 1/2", parse(t, qq, "2x + 1").Normalize())
	//
	_, err := parse(t, zz, "2x + 1").Monic()
	assert.ErrorIs(t, err, coeff.ErrDomain)
	//
	monic, err := parse(t, qq, "2x + 1").Monic()
	require.NoError(t, err)
	checkPolynomial(t, "x + 1/2", monic)
}

func TestPolynomial_SmallField(t *testing.T) {
	gf, err := coeff.NewSmallField(7)
	require.NoError(t, err)
	//
	ring := NewRing([]string{"x"}, coeff.Domain[coeff.Element](gf), Lex)
	f := parse(t, ring, "x + 3")
	//
	checkPolynomial(t, "x^2 + 6*x + 2", f.Mul(f))
	checkPolynomial(t, "x + 3", parse(t, ring, "8x - 4"))
}

func TestPolynomial_RingMismatch(t *testing.T) {
	r1 := NewRing([]string{"x", "y"}, coeff.Rationals(), Lex)
	r2 := NewRing([]string{"x", "y"}, coeff.Rationals(), Lex)
	r3 := NewRing([]string{"x", "y", "z"}, coeff.Rationals(), Lex)
	r4 := NewRing([]string{"x", "y"}, coeff.Rationals(), GradedLex)
	f := parse(t, r1, "x + y")
	// Structurally identical rings are compatible
	checkPolynomial(t, "2*x + 2*y", f.Add(parse(t, r2, "x + y")))
	assert.NoError(t, r2.CheckRing(f))
	//
	assert.ErrorIs(t, r3.CheckRing(f), ErrRingMismatch)
	assert.ErrorIs(t, r4.CheckRing(f), ErrRingMismatch)
	assert.Panics(t, func() { f.Add(parse(t, r3, "z")) })
	assert.False(t, f.Equal(parse(t, r4, "x + y")))
}

func TestPolynomial_Pow(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Integers(), GradedLex)
	//
	checkPolynomial(t, "x^3 + 3*x^2*y + 3*x*y^2 + y^3", parse(t, ring, "(x+y)^3"))
	checkPolynomial(t, "1", parse(t, ring, "(x+y)**0"))
}

func TestPolynomial_PowLarge(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Integers(), GradedLex)
	//
	checkPolynomial(t, "x^1000000", parse(t, ring, "x^1000000"))
	checkPolynomial(t, "x^4294967295", parse(t, ring, "x^4294967295"))
	//
	p := parse(t, ring, "(x + 1)^64")
	assert.Equal(t, uint(65), p.Len())
	assert.Equal(t, "64", p.Term(1).Coeff.String())
	assert.Equal(t, "1", p.Term(64).Coeff.String())
}

func TestPolynomial_ExponentOverflow(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Integers(), Lex)
	//
	p, err := ring.Monomial(big.NewInt(1), NewMonomial(math.MaxUint32, 0))
	require.NoError(t, err)
	// Wrapping around would give one
	assert.ErrorIs(t, panicError(func() { p.Mul(ring.Var(0)) }), ErrExponentOverflow)
	assert.ErrorIs(t, panicError(func() { p.Pow(2) }), ErrExponentOverflow)
	assert.NoError(t, panicError(func() { p.Mul(ring.Var(1)) }))
}

func TestPolynomial_MonomialLength(t *testing.T) {
	ring := NewRing([]string{"x", "y"}, coeff.Integers(), Lex)
	//
	_, err := ring.Monomial(big.NewInt(1), NewMonomial(1))
	assert.ErrorIs(t, err, ErrRingMismatch)
	_, err = ring.FromTerms(NewTerm(big.NewInt(1), 1, 2, 3))
	assert.ErrorIs(t, err, ErrRingMismatch)
	//
	p, err := ring.Monomial(big.NewInt(3), NewMonomial(1, 2))
	require.NoError(t, err)
	checkPolynomial(t, "3*x*y^2", p)
	assert.ErrorIs(t, panicError(func() { p.MulTerm(big.NewInt(1), NewMonomial(1), Left) }), ErrRingMismatch)
	// Zero coefficients give zero, but the monomial is still checked
	p, err = ring.Monomial(big.NewInt(0), NewMonomial(1, 2))
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}

// panicError runs f and returns the error it panicked with, if any.
func panicError(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	//
	f()
	//
	return nil
}

func parse[C any](t *testing.T, ring *Ring[C], text string) Polynomial[C] {
	t.Helper()
	//
	p, err := ring.ParsePolynomial(text)
	require.NoError(t, err, text)
	//
	return p
}

func checkPolynomial[C any](t *testing.T, expected string, actual Polynomial[C]) {
	t.Helper()
	//
	assert.Equal(t, expected, actual.String())
	// Check terms are strictly decreasing
	for i := uint(1); i < actual.Len(); i++ {
		assert.Positive(t, actual.Ring().Order().Compare(actual.Term(i-1).Exp, actual.Term(i).Exp))
	}
}
