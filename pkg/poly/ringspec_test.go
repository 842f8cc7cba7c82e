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

func TestParseRingSpec(t *testing.T) {
	for _, tc := range []struct {
		input   string
		domain  string
		modulus int64
		vars    []string
		order   Order
	}{
		{"QQ(x,y) L", "QQ", 0, []string{"x", "y"}, Lex},
		{"ZZ(B,S,T,Z,P,W) G", "ZZ", 0, []string{"B", "S", "T", "Z", "P", "W"}, GradedLex},
		{"Mod 19 (x, y) R", "Mod", 19, []string{"x", "y"}, GradedRevLex},
		{"GF 7 (a)", "GF", 7, []string{"a"}, DefaultOrder},
		{"BLS12-377 (x1, x2) lex", "BLS12-377", 0, []string{"x1", "x2"}, Lex},
	} {
		t.Run(tc.input, func(t *testing.T) {
			spec, err := ParseRingSpec(tc.input)
			require.NoError(t, err)
			//
			assert.Equal(t, tc.domain, spec.Domain)
			assert.Equal(t, tc.vars, spec.Vars)
			assert.Equal(t, tc.order, spec.Order)
			//
			if tc.modulus != 0 {
				require.NotNil(t, spec.Modulus)
				assert.Equal(t, tc.modulus, spec.Modulus.Int64())
			} else {
				assert.Nil(t, spec.Modulus)
			}
		})
	}
}

func TestParseRingSpec_Errors(t *testing.T) {
	for _, input := range []string{"", "RR(x)", "QQ x", "QQ(x,x)", "QQ(x) Q", "Mod (x)", "QQ(x,) L", "QQ(x) L extra",
		"QQ(x,d) L RelationTable((d), (x)"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRingSpec(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestNewRingFromSpec_Solvable(t *testing.T) {
	spec, err := ParseRingSpec("QQ(x,d) L RelationTable((d), (x), (x*d + 1))")
	require.NoError(t, err)
	require.Len(t, spec.Relations, 1)
	assert.Equal(t, RelationSpec{"d", "x", "x*d + 1"}, spec.Relations[0])
	//
	ring, err := NewRingFromSpec(spec, coeff.Rationals())
	require.NoError(t, err)
	assert.Equal(t, Solvable, ring.Kind())
	checkPolynomial(t, "x*d + 1", parse(t, ring, "d*x"))
	assert.Equal(t, "QQ(x,d) L RelationTable((d), (x), (x*d + 1))", ring.String())
	// Description round trips
	spec2, err := ParseRingSpec(ring.String())
	require.NoError(t, err)
	assert.Equal(t, spec, spec2)
}

func TestNewRingFromSpec_BadRelation(t *testing.T) {
	for _, input := range []string{
		"QQ(x,d) L RelationTable((x), (d), (x*d + 1))",
		"QQ(x,d) L RelationTable((d), (q), (x*d + 1))",
		"QQ(x,d) L RelationTable((d), (x), (x^2))",
		"QQ(x,d) L RelationTable((d), (x), (x*))",
	} {
		spec, err := ParseRingSpec(input)
		require.NoError(t, err)
		//
		_, err = NewRingFromSpec(spec, coeff.Rationals())
		assert.ErrorIs(t, err, ErrRelation, input)
	}
}

func TestNewRingFromSpec_Modular(t *testing.T) {
	spec, err := ParseRingSpec("Mod 19 (x, y) R")
	require.NoError(t, err)
	//
	domain, err := coeff.NewModular(spec.Modulus)
	require.NoError(t, err)
	//
	ring, err := NewRingFromSpec[*big.Int](spec, domain)
	require.NoError(t, err)
	assert.Equal(t, "Mod 19(x,y) R", ring.String())
	checkPolynomial(t, "x + 18*y", parse(t, ring, "x - y"))
}
